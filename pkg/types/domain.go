package types

import (
	"fmt"
	"strings"
)

// Direction identifies a translation pair as "<src>-<dst>" (e.g. "en-hi").
// It is immutable and used as the bundle cache key.
type Direction string

// ParseDirection validates the "<src>-<dst>" form and returns the Direction.
func ParseDirection(s string) (Direction, error) {
	src, dst, ok := strings.Cut(s, "-")
	if !ok || src == "" || dst == "" {
		return "", fmt.Errorf("invalid direction %q: want <src>-<dst>", s)
	}
	return Direction(s), nil
}

// Source returns the source language tag of the direction.
func (d Direction) Source() string {
	src, _, _ := strings.Cut(string(d), "-")
	return src
}

// Target returns the target language tag of the direction.
func (d Direction) Target() string {
	_, dst, _ := strings.Cut(string(d), "-")
	return dst
}

func (d Direction) String() string { return string(d) }

// BundleSpec describes an on-disk model bundle for one direction.
type BundleSpec struct {
	// Direction served by this bundle.
	// example: en-hi
	Direction Direction `json:"direction" example:"en-hi"`
	// Absolute path to the bundle directory.
	// example: /home/user/models/translate/en-hi
	Dir string `json:"dir" example:"/home/user/models/translate/en-hi"`
	// Path to the tokenizer definition file.
	TokenizerPath string `json:"tokenizer_path"`
	// Path to the quantized model artifact.
	ModelPath string `json:"model_path"`
}
