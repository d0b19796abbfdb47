package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Encoding is the result of encoding one source text.
type Encoding struct {
	// IDs is the token sequence, ending in EOS.
	IDs []int32
	// Truncated is true when the text exceeded maxLength and the suffix was
	// dropped. The sequence still ends in EOS.
	Truncated bool
}

// Encode converts text into a token sequence of at most maxLength ids,
// appending EOS. Overlong input is truncated deterministically: the prefix is
// kept, the suffix dropped, and Truncated set so callers can report it.
func (t *Tokenizer) Encode(text string, maxLength int) (Encoding, error) {
	if !utf8.ValidString(text) {
		return Encoding{}, errMalformed()
	}
	if maxLength < 2 {
		// Need room for at least one piece plus EOS.
		maxLength = 2
	}
	for _, r := range text {
		if !t.supported(r) {
			return Encoding{}, errUnsupportedRune(r)
		}
	}

	var ids []int32
	for _, word := range strings.Fields(text) {
		ids = t.appendWord(ids, WordBoundary+word)
	}

	enc := Encoding{}
	if len(ids) > maxLength-1 {
		ids = ids[:maxLength-1]
		enc.Truncated = true
	}
	enc.IDs = append(ids, t.specials.EOS)
	return enc, nil
}

// appendWord segments one ▁-prefixed word by greedy longest match against the
// piece table, falling back to single-rune pieces and finally to unk.
func (t *Tokenizer) appendWord(ids []int32, word string) []int32 {
	runes := []rune(word)
	for i := 0; i < len(runes); {
		n := len(runes) - i
		if n > t.maxPieceLen {
			n = t.maxPieceLen
		}
		matched := false
		for l := n; l >= 1; l-- {
			if id, ok := t.pieces[string(runes[i:i+l])]; ok {
				ids = append(ids, id)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			ids = append(ids, t.specials.Unk)
			i++
		}
	}
	return ids
}

// Decode converts a token sequence back into text, stripping special tokens.
// It is the left inverse of Encode for any sequence the decoding loop can
// produce, up to the point of truncation.
func (t *Tokenizer) Decode(ids []int32) (string, error) {
	var b strings.Builder
	for _, id := range ids {
		if id == t.specials.Pad || id == t.specials.EOS ||
			id == t.specials.Unk || id == t.specials.DecoderStart {
			continue
		}
		piece, ok := t.byID[id]
		if !ok {
			return "", errUnknownID(id)
		}
		b.WriteString(piece)
	}
	out := strings.ReplaceAll(b.String(), WordBoundary, " ")
	return strings.TrimPrefix(out, " "), nil
}
