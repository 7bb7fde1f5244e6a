// Package mastery tracks the identification-mode word ledger: the set of
// words the learner has ever typed correctly, and the growth stage derived
// from its size.
package mastery

import (
	"sort"

	"github.com/abhisek/hearo/internal/store"
)

// Stage is the growth-tree stage shown on the progress screen.
type Stage string

const (
	StageSeedling Stage = "seedling"
	StageSapling  Stage = "sapling"
	StageTree     Stage = "tree"
	StageGolden   Stage = "golden"
)

// StageFor maps a mastered-word count to a growth stage.
func StageFor(mastered int) Stage {
	switch {
	case mastered >= 80:
		return StageGolden
	case mastered >= 50:
		return StageTree
	case mastered >= 25:
		return StageSapling
	default:
		return StageSeedling
	}
}

// Service owns the mastered-word set. Words are only ever added; a wrong
// answer never demotes a mastered word.
type Service struct {
	words map[string]bool
}

// NewService creates a mastery service, loading the word set from the
// snapshot.
func NewService(snap *store.SnapshotData) *Service {
	s := &Service{words: make(map[string]bool)}
	if snap == nil || snap.Mastery == nil {
		return s
	}
	for _, w := range snap.Mastery.MasteredWords {
		s.words[w] = true
	}
	return s
}

// Record marks a word as mastered. Reports whether the word is new.
func (s *Service) Record(word string) bool {
	if word == "" || s.words[word] {
		return false
	}
	s.words[word] = true
	return true
}

// IsMastered reports whether the learner has ever answered the word
// correctly.
func (s *Service) IsMastered(word string) bool { return s.words[word] }

// Count returns the number of distinct mastered words.
func (s *Service) Count() int { return len(s.words) }

// Stage returns the current growth stage.
func (s *Service) Stage() Stage { return StageFor(len(s.words)) }

// Words returns the mastered words in sorted order.
func (s *Service) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// SnapshotData exports the word set for persistence.
func (s *Service) SnapshotData() *store.MasteryData {
	return &store.MasteryData{MasteredWords: s.Words()}
}
