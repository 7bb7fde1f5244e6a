package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/hearo/internal/app"
	"github.com/abhisek/hearo/internal/config"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/progress"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/screens/shared"
	"github.com/abhisek/hearo/internal/stimuli"
	"github.com/abhisek/hearo/internal/store"
)

// snapshotSaver writes the full learner state as one snapshot. The services
// are bound after construction because they load from the same snapshot.
type snapshotSaver struct {
	repo     store.SnapshotRepo
	progress *progress.Service
	rewards  *rewards.Service
	mastery  *mastery.Service
}

func (s *snapshotSaver) Save(ctx context.Context) error {
	data := store.SnapshotData{
		Version:  1,
		Progress: s.progress.SnapshotData(),
		Rewards:  s.rewards.SnapshotData(),
		Mastery:  s.mastery.SnapshotData(),
	}
	return s.repo.Save(ctx, data)
}

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defaults, err := fileCfg.GameDefaults()
	if err != nil {
		return fmt.Errorf("config defaults: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	var snapData *store.SnapshotData
	if snap != nil {
		snapData = &snap.Data
	}

	eventRepo := st.EventRepo()
	saver := &snapshotSaver{repo: st.SnapshotRepo()}
	progressSvc := progress.NewService(snapData, saver)
	rewardsSvc := rewards.NewService(snapData, eventRepo)
	masterySvc := mastery.NewService(snapData)
	saver.progress = progressSvc
	saver.rewards = rewardsSvc
	saver.mastery = masterySvc

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picker := stimuli.NewPicker(rng)
	if packPath := fileCfg.PackPath(); packPath != "" {
		pack, err := stimuli.LoadPack(packPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Content pack not loaded:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the built-in content.")
		} else {
			picker = stimuli.NewPickerWithPack(rng, pack)
		}
	}

	return app.Run(shared.Deps{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Progress:     progressSvc,
		Rewards:      rewardsSvc,
		Mastery:      masterySvc,
		Picker:       picker,
		Defaults:     defaults,
	})
}
