package stimuli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Pack is an externally supplied content pack: replacement word pairs and
// identification challenges, e.g. a therapist's custom vocabulary list.
type Pack struct {
	Name           string
	WordPairs      []Pair
	WordChallenges []WordChallenge
}

// packSchema validates the pack file before any field is trusted.
const packSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"word_pairs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["first", "second", "same", "difficulty"],
				"properties": {
					"first": {"type": "string", "minLength": 1},
					"second": {"type": "string", "minLength": 1},
					"same": {"type": "boolean"},
					"difficulty": {"enum": ["easy", "medium", "hard"]}
				}
			}
		},
		"word_challenges": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["word", "category"],
				"properties": {
					"word": {"type": "string", "minLength": 1},
					"pronunciation": {"type": "string"},
					"category": {"enum": ["common", "intermediate", "advanced"]},
					"hint": {"type": "string"}
				}
			}
		}
	}
}`

type packFile struct {
	Name      string `json:"name"`
	WordPairs []struct {
		First      string `json:"first"`
		Second     string `json:"second"`
		Same       bool   `json:"same"`
		Difficulty string `json:"difficulty"`
	} `json:"word_pairs"`
	WordChallenges []struct {
		Word          string `json:"word"`
		Pronunciation string `json:"pronunciation"`
		Category      string `json:"category"`
		Hint          string `json:"hint"`
	} `json:"word_challenges"`
}

// LoadPack reads and validates a content pack from path.
func LoadPack(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	return ParsePack(raw)
}

// ParsePack validates raw JSON against the pack schema and decodes it.
func ParsePack(raw []byte) (*Pack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("pack is not valid JSON: %w", err)
	}

	compiled, err := compiledPackSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pack failed validation: %w", err)
	}

	var pf packFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	pack := &Pack{Name: pf.Name}
	for _, wp := range pf.WordPairs {
		pack.WordPairs = append(pack.WordPairs, Pair{
			Kind:       PairWord,
			First:      wp.First,
			Second:     wp.Second,
			Same:       wp.Same,
			Difficulty: PairDifficulty(wp.Difficulty),
		})
	}
	for _, wc := range pf.WordChallenges {
		pack.WordChallenges = append(pack.WordChallenges, WordChallenge{
			Word:          wc.Word,
			Pronunciation: wc.Pronunciation,
			Category:      WordCategory(wc.Category),
			Hint:          wc.Hint,
		})
	}
	return pack, nil
}

func compiledPackSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(packSchema))
	if err != nil {
		return nil, fmt.Errorf("parse pack schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://content-pack.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://content-pack.json")
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	return compiled, nil
}
