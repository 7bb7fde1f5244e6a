package store

import (
	"context"
	"fmt"

	"github.com/abhisek/hearo/ent"
	"github.com/abhisek/hearo/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetDifficulty(data.Difficulty).
		SetSpeed(data.Speed).
		SetSetNumber(data.SetNumber).
		SetQuestions(data.Questions).
		SetPerfects(data.Perfects).
		SetTotalScore(data.TotalScore).
		SetMaxCombo(data.MaxCombo).
		SetAvgReactionMs(data.AvgReactionMs).
		SetAccuracy(data.Accuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SessionSummaryRecord{
			SessionID:     e.SessionID,
			Timestamp:     e.Timestamp,
			Mode:          e.Mode,
			Difficulty:    e.Difficulty,
			Questions:     e.Questions,
			Perfects:      e.Perfects,
			TotalScore:    e.TotalScore,
			MaxCombo:      e.MaxCombo,
			AvgReactionMs: e.AvgReactionMs,
			Accuracy:      e.Accuracy,
		}
	}
	return records, nil
}
