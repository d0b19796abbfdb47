package textproc

import (
	"errors"
	"testing"
)

func TestPreprocessNormalizes(t *testing.T) {
	got, err := Preprocess("  Hello,\t how\n are  you?  ")
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if got != "Hello, how are you?" {
		t.Fatalf("got %q", got)
	}
}

func TestPreprocessNFC(t *testing.T) {
	// e + combining acute should compose to the single codepoint é.
	got, err := Preprocess("café")
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if got != "café" {
		t.Fatalf("got %q", got)
	}
}

func TestPreprocessRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Preprocess(in); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("input %q: err=%v", in, err)
		}
	}
}

func TestPostprocessArtifactsAndSpacing(t *testing.T) {
	got := Postprocess("▁Hello , world</s> !", "en")
	if got != "Hello, world!" {
		t.Fatalf("got %q", got)
	}
}

func TestPostprocessDanda(t *testing.T) {
	if got := Postprocess("नमस्ते दुनिया.", "hi"); got != "नमस्ते दुनिया।" {
		t.Fatalf("got %q", got)
	}
	// Not applied for Latin-script targets.
	if got := Postprocess("Hello world.", "en"); got != "Hello world." {
		t.Fatalf("got %q", got)
	}
}

func TestPostprocessPassthrough(t *testing.T) {
	if got := Postprocess("already clean", "en"); got != "already clean" {
		t.Fatalf("got %q", got)
	}
}
