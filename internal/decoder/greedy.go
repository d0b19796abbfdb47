package decoder

import (
	"context"

	"lingod/internal/runtime"
)

// Greedy picks the single highest-scoring token at every step. Deterministic
// for fixed weights and input.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Search(ctx context.Context, h runtime.Handle, source []int32, cfg Config) (Result, error) {
	history := make([]int32, 1, cfg.MaxLength+1)
	history[0] = cfg.DecoderStart
	out := make([]int32, 0, cfg.MaxLength)
	for len(out) < cfg.MaxLength {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		dist, err := h.Step(ctx, source, history)
		if err != nil {
			return Result{}, err
		}
		next, err := argmax(dist)
		if err != nil {
			return Result{}, err
		}
		out = append(out, next)
		history = append(history, next)
		if next == cfg.EOS {
			return Result{IDs: out}, nil
		}
	}
	// No EOS by the ceiling: truncate rather than run away.
	return Result{IDs: out, LengthLimited: true}, nil
}
