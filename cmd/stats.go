package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hearo/internal/levels"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var snapData *store.SnapshotData
		if snap != nil {
			snapData = &snap.Data
		}

		printLedger(snapData)

		recent, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(recent) == 0 {
			fmt.Println("\nNo finished sets yet.")
			return nil
		}

		fmt.Println("\nRecent sets:")
		for _, rec := range recent {
			fmt.Printf("  %s  %-14s %-7s  %4d pts  combo x%-2d  %.0f%%\n",
				rec.Timestamp.Format("2006-01-02"), rec.Mode, rec.Difficulty,
				rec.TotalScore, rec.MaxCombo, rec.Accuracy*100)
		}
		return nil
	},
}

func printLedger(snapData *store.SnapshotData) {
	var perfects, sessions, streak int
	var accuracy float64
	if snapData != nil && snapData.Progress != nil {
		perfects = snapData.Progress.TotalPerfects
		sessions = snapData.Progress.TotalTrainingSessions
		streak = snapData.Progress.ConsecutiveDays
		accuracy = snapData.Progress.AverageAccuracy
	}

	level := levels.ForPerfects(perfects)
	fmt.Printf("%s Lv.%d %s\n", level.Badge, level.Level, level.Name)
	fmt.Printf("Perfects %d   Sessions %d   Streak %d days   Avg accuracy %.0f%%\n",
		perfects, sessions, streak, accuracy)

	rewardsSvc := rewards.NewService(snapData, nil)
	rank := rewardsSvc.Rank()
	fmt.Printf("Rank %s   %d pts   Artifact %d/%d pieces",
		rank.Name, rewardsSvc.Points(), rewardsSvc.ArtifactPieces(), rewards.ArtifactPiecesNeeded)
	if n := rewardsSvc.ArtifactsCompleted(); n > 0 {
		fmt.Printf("   %d complete", n)
	}
	fmt.Println()

	masterySvc := mastery.NewService(snapData)
	fmt.Printf("Word tree %s   %d words mastered\n", masterySvc.Stage(), masterySvc.Count())
}
