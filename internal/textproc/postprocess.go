package textproc

import "strings"

// specialArtifacts are literal special-token spellings a decoder can leak
// into text output.
var specialArtifacts = []string{"<pad>", "<unk>", "</s>", "▁"}

// danda languages end sentences with U+0964 rather than a full stop.
var dandaLanguages = map[string]bool{
	"hi": true, "mr": true, "ne": true, "sa": true,
}

// Postprocess repairs decoded text for the target language: residual
// special-token artifacts are removed, spacing around punctuation is fixed,
// and sentence-final punctuation follows the target script's convention.
// Pure passthrough when nothing applies.
func Postprocess(text, targetLang string) string {
	out := text
	for _, a := range specialArtifacts {
		out = strings.ReplaceAll(out, a, "")
	}
	out = strings.Join(strings.Fields(out), " ")
	for _, p := range []string{",", ".", "!", "?", ":", ";", "।", "،"} {
		out = strings.ReplaceAll(out, " "+p, p)
	}
	if dandaLanguages[targetLang] {
		if strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "...") {
			out = strings.TrimSuffix(out, ".") + "।"
		}
	}
	return out
}
