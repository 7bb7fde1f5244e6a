package store

import (
	"context"
	"fmt"

	"github.com/abhisek/hearo/ent"
	"github.com/abhisek/hearo/ent/rewardevent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetAwardType(data.AwardType).
		SetPoints(data.Points).
		SetReason(data.Reason).
		SetSessionID(data.SessionID)

	if data.NewRank != nil {
		builder = builder.SetNewRank(*data.NewRank)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardEventRecord, len(events))
	for i, e := range events {
		records[i] = RewardEventRecord{
			AwardType: e.AwardType,
			Points:    e.Points,
			Reason:    e.Reason,
			SessionID: e.SessionID,
			NewRank:   e.NewRank,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
