// Package textproc holds the pure text-transform stages around tokenization:
// source normalization before encoding and target-script repair after
// decoding. No I/O, no state.
package textproc

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyInput is returned when the source text is empty once whitespace is
// stripped.
var ErrEmptyInput = errors.New("input is empty after normalization")

// Preprocess normalizes source text for encoding: Unicode NFC, whitespace
// collapsed to single spaces, leading/trailing whitespace removed.
func Preprocess(text string) (string, error) {
	out := norm.NFC.String(text)
	out = strings.Join(strings.Fields(out), " ")
	if out == "" {
		return "", ErrEmptyInput
	}
	return out, nil
}
