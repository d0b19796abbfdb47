// Package tokenizer converts text to and from token-id sequences for one
// translation direction's vocabulary. The on-disk definition is a JSON piece
// table using the SentencePiece "▁" word-boundary convention.
package tokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"
)

// WordBoundary marks the start of a word in piece form.
const WordBoundary = "▁" // ▁

// Specials holds the special token ids of a vocabulary.
type Specials struct {
	Pad          int32 `json:"pad"`
	Unk          int32 `json:"unk"`
	EOS          int32 `json:"eos"`
	DecoderStart int32 `json:"decoder_start"`
}

type definition struct {
	ModelID       string           `json:"model_id"`
	SourceScripts []string         `json:"source_scripts"`
	TargetScripts []string         `json:"target_scripts"`
	Pieces        map[string]int32 `json:"pieces"`
	Specials      Specials         `json:"specials"`
}

// Tokenizer is a loaded, immutable vocabulary for one direction.
type Tokenizer struct {
	modelID     string
	pieces      map[string]int32
	byID        map[int32]string
	maxPieceLen int // in runes
	specials    Specials
	scripts     []*unicode.RangeTable
}

// Load reads and validates a tokenizer definition file.
func Load(path string) (*Tokenizer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokenizer: %w", err)
	}
	var def definition
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("parse tokenizer: %w", err)
	}
	if len(def.Pieces) == 0 {
		return nil, fmt.Errorf("tokenizer %s: empty piece table", path)
	}
	t := &Tokenizer{
		modelID:  def.ModelID,
		pieces:   def.Pieces,
		byID:     make(map[int32]string, len(def.Pieces)),
		specials: def.Specials,
	}
	for piece, id := range def.Pieces {
		if id < 0 {
			return nil, fmt.Errorf("tokenizer %s: negative id for piece %q", path, piece)
		}
		t.byID[id] = piece
		if n := utf8.RuneCountInString(piece); n > t.maxPieceLen {
			t.maxPieceLen = n
		}
	}
	for _, name := range def.SourceScripts {
		rt, ok := unicode.Scripts[name]
		if !ok {
			return nil, fmt.Errorf("tokenizer %s: unknown script %q", path, name)
		}
		t.scripts = append(t.scripts, rt)
	}
	return t, nil
}

// ModelID returns the model identifier recorded in the definition.
func (t *Tokenizer) ModelID() string { return t.modelID }

// Specials returns the special token ids of this vocabulary.
func (t *Tokenizer) Specials() Specials { return t.specials }

// VocabSize returns the number of pieces in the table.
func (t *Tokenizer) VocabSize() int { return len(t.pieces) }

// supported reports whether r is within the adapter's script set. Whitespace,
// punctuation, digits, and common symbols are always allowed; letters must
// belong to a configured source script when any are configured.
func (t *Tokenizer) supported(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
		return true
	}
	if len(t.scripts) == 0 {
		return true
	}
	for _, rt := range t.scripts {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}
