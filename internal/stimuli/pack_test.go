package stimuli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePack(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "full pack",
			raw: `{
				"name": "clinic set A",
				"word_pairs": [
					{"first": "달", "second": "탈", "same": false, "difficulty": "medium"}
				],
				"word_challenges": [
					{"word": "사과", "pronunciation": "사과~", "category": "common", "hint": "a fruit"}
				]
			}`,
		},
		{
			name: "name only",
			raw:  `{"name": "empty pack"}`,
		},
		{
			name:    "missing name",
			raw:     `{"word_pairs": []}`,
			wantErr: true,
		},
		{
			name:    "bad difficulty enum",
			raw:     `{"name": "x", "word_pairs": [{"first": "a", "second": "b", "same": true, "difficulty": "brutal"}]}`,
			wantErr: true,
		},
		{
			name:    "bad category enum",
			raw:     `{"name": "x", "word_challenges": [{"word": "a", "category": "rare"}]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `name = clinic`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack, err := ParsePack([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, pack)
		})
	}
}

func TestParsePack_Fields(t *testing.T) {
	raw := `{
		"name": "clinic set A",
		"word_pairs": [
			{"first": "달", "second": "탈", "same": false, "difficulty": "medium"},
			{"first": "밤", "second": "밤", "same": true, "difficulty": "easy"}
		],
		"word_challenges": [
			{"word": "사과", "pronunciation": "사과~", "category": "common", "hint": "a fruit"}
		]
	}`

	pack, err := ParsePack([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "clinic set A", pack.Name)
	require.Len(t, pack.WordPairs, 2)
	assert.Equal(t, PairWord, pack.WordPairs[0].Kind)
	assert.Equal(t, PairMedium, pack.WordPairs[0].Difficulty)
	assert.False(t, pack.WordPairs[0].Same)
	assert.True(t, pack.WordPairs[1].Same)

	require.Len(t, pack.WordChallenges, 1)
	assert.Equal(t, "사과", pack.WordChallenges[0].Word)
	assert.Equal(t, WordCommon, pack.WordChallenges[0].Category)
}

func TestLoadPack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "from disk"}`), 0o644))

	pack, err := LoadPack(path)
	require.NoError(t, err)
	assert.Equal(t, "from disk", pack.Name)

	_, err = LoadPack(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
