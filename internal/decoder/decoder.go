// Package decoder drives the inference runtime to turn an encoded source
// sequence into an output token sequence. The search strategy is pluggable;
// greedy arg-max is the default and beam search is a drop-in substitute with
// the same contract.
package decoder

import (
	"context"
	"fmt"

	"lingod/internal/runtime"
)

// Config carries the generation bounds and special token ids for one run.
type Config struct {
	// MaxLength is a hard ceiling on the number of generated tokens.
	MaxLength int
	// EOS terminates generation when produced.
	EOS int32
	// DecoderStart seeds the target-side history.
	DecoderStart int32
}

// Result is a completed generation.
type Result struct {
	// IDs is the output sequence, ending in EOS unless LengthLimited.
	IDs []int32
	// LengthLimited is true when generation hit MaxLength before EOS.
	LengthLimited bool
}

// Strategy selects output tokens by repeatedly querying the runtime handle.
// Implementations must never return more than cfg.MaxLength tokens and must
// stop at the first ctx cancellation or handle error, discarding partial
// output.
type Strategy interface {
	Name() string
	Search(ctx context.Context, h runtime.Handle, source []int32, cfg Config) (Result, error)
}

// DecodeSequence runs the configured strategy against the handle. A nil
// strategy means greedy.
func DecodeSequence(ctx context.Context, h runtime.Handle, source []int32, cfg Config, strat Strategy) (Result, error) {
	if cfg.MaxLength <= 0 {
		return Result{}, fmt.Errorf("max length must be positive, got %d", cfg.MaxLength)
	}
	if len(source) == 0 {
		return Result{}, fmt.Errorf("empty source sequence")
	}
	if strat == nil {
		strat = Greedy{}
	}
	res, err := strat.Search(ctx, h, source, cfg)
	if err != nil {
		return Result{}, err
	}
	if len(res.IDs) > cfg.MaxLength {
		// Strategy bug; enforce the ceiling regardless.
		res.IDs = res.IDs[:cfg.MaxLength]
		res.LengthLimited = true
	}
	return res, nil
}

// argmax returns the index of the highest score, breaking ties toward the
// lowest id so generation stays reproducible.
func argmax(dist []float32) (int32, error) {
	if len(dist) == 0 {
		return 0, fmt.Errorf("empty distribution from runtime")
	}
	best := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] > dist[best] {
			best = i
		}
	}
	return int32(best), nil
}
