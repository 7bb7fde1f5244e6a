// Package shared carries the dependencies screens need to run games and
// render progress.
package shared

import (
	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/progress"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/stimuli"
	"github.com/abhisek/hearo/internal/store"
)

// Deps bundles the services and repositories injected at startup.
type Deps struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo

	Progress *progress.Service
	Rewards  *rewards.Service
	Mastery  *mastery.Service

	Picker   *stimuli.Picker
	Defaults gamecfg.Config
}
