package tokenizer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testDef = `{
  "model_id": "marian-en-hi-int8",
  "source_scripts": ["Latin"],
  "target_scripts": ["Devanagari"],
  "pieces": {
    "▁Hello": 5, "▁world": 6, "▁how": 7, "▁are": 8, "▁you": 9,
    ",": 10, "?": 11, ".": 12,
    "▁h": 13, "o": 14, "w": 15, "▁He": 16, "l": 17
  },
  "specials": {"pad": 0, "unk": 1, "eos": 2, "decoder_start": 0}
}`

func loadTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tokenizer.json")
	if err := os.WriteFile(p, []byte(testDef), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tok, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tok
}

func TestEncodeGreedyLongestMatch(t *testing.T) {
	tok := loadTestTokenizer(t)
	enc, err := tok.Encode("Hello, how are you?", 256)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []int32{5, 10, 7, 8, 9, 11, 2}
	if !reflect.DeepEqual(enc.IDs, want) {
		t.Fatalf("ids=%v want=%v", enc.IDs, want)
	}
	if enc.Truncated {
		t.Fatalf("unexpected truncation")
	}
}

func TestEncodeDeterministicTruncation(t *testing.T) {
	tok := loadTestTokenizer(t)
	full, err := tok.Encode("Hello, how are you?", 256)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	enc, err := tok.Encode("Hello, how are you?", 4)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !enc.Truncated {
		t.Fatalf("expected truncation flag")
	}
	if len(enc.IDs) != 4 {
		t.Fatalf("len=%d want 4", len(enc.IDs))
	}
	if enc.IDs[len(enc.IDs)-1] != 2 {
		t.Fatalf("expected EOS terminator, got %v", enc.IDs)
	}
	// Prefix is kept verbatim.
	if !reflect.DeepEqual(enc.IDs[:3], full.IDs[:3]) {
		t.Fatalf("prefix changed: %v vs %v", enc.IDs, full.IDs)
	}
}

func TestRoundTrip(t *testing.T) {
	tok := loadTestTokenizer(t)
	// Sequences the decoding loop could produce: vocabulary pieces ending in
	// EOS, or length-truncated without it.
	for _, seq := range [][]int32{
		{5, 10, 6, 2},
		{5, 7, 8, 9, 11, 2},
		{5, 10, 7}, // length-limited, no EOS
	} {
		text, err := tok.Decode(seq)
		if err != nil {
			t.Fatalf("decode %v: %v", seq, err)
		}
		enc, err := tok.Encode(text, 256)
		if err != nil {
			t.Fatalf("re-encode %q: %v", text, err)
		}
		// Compare up to the re-appended EOS.
		got := enc.IDs[:len(enc.IDs)-1]
		want := seq
		if want[len(want)-1] == 2 {
			want = want[:len(want)-1]
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip %v -> %q -> %v", seq, text, enc.IDs)
		}
	}
}

func TestDecodeStripsSpecials(t *testing.T) {
	tok := loadTestTokenizer(t)
	text, err := tok.Decode([]int32{0, 5, 1, 10, 6, 2})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "Hello, world" {
		t.Fatalf("text=%q", text)
	}
}

func TestEncodeRejectsMalformedBytes(t *testing.T) {
	tok := loadTestTokenizer(t)
	_, err := tok.Encode(string([]byte{0xff, 0xfe}), 16)
	if err == nil || !IsTokenizationError(err) {
		t.Fatalf("expected tokenization error, got %v", err)
	}
}

func TestEncodeRejectsOutOfScript(t *testing.T) {
	tok := loadTestTokenizer(t)
	// Devanagari is the target script, not a source script for en-hi.
	_, err := tok.Encode("नमस्ते", 16)
	if err == nil || !IsTokenizationError(err) {
		t.Fatalf("expected tokenization error, got %v", err)
	}
}

func TestDecodeUnknownID(t *testing.T) {
	tok := loadTestTokenizer(t)
	if _, err := tok.Decode([]int32{9999}); err == nil || !IsTokenizationError(err) {
		t.Fatalf("expected tokenization error, got %v", err)
	}
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte(`{"pieces":{}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for empty piece table")
	}
	p2 := filepath.Join(dir, "script.json")
	if err := os.WriteFile(p2, []byte(`{"pieces":{"a":3},"source_scripts":["Klingon"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(p2); err == nil {
		t.Fatalf("expected error for unknown script")
	}
}
