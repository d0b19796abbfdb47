package tokenizer

import "fmt"

// tokenizationError signals malformed input bytes or codepoints outside the
// adapter's script set, for client-facing error mapping.
type tokenizationError struct{ msg string }

func (e tokenizationError) Error() string { return e.msg }

func errMalformed() error {
	return tokenizationError{msg: "malformed UTF-8 input"}
}

func errUnsupportedRune(r rune) error {
	return tokenizationError{msg: fmt.Sprintf("codepoint %q outside supported script set", r)}
}

func errUnknownID(id int32) error {
	return tokenizationError{msg: fmt.Sprintf("token id %d not in vocabulary", id)}
}

// IsTokenizationError reports whether err originated from encoding/decoding
// rather than from model load or inference.
func IsTokenizationError(err error) bool {
	_, ok := err.(tokenizationError)
	return ok
}
