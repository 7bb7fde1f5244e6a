package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendResponseEvent(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetStimulusKind(data.StimulusKind).
		SetStimulus(data.Stimulus).
		SetAnswer(data.Answer).
		SetTier(data.Tier).
		SetElapsedMs(data.ElapsedMs).
		SetPoints(data.Points).
		SetCombo(data.Combo).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) TierCounts(ctx context.Context) (map[string]int, error) {
	events, err := r.client.ResponseEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tier counts: %w", err)
	}

	byTier := make(map[string]int)
	for _, e := range events {
		byTier[e.Tier]++
	}
	return byTier, nil
}
