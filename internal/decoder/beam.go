package decoder

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lingod/internal/runtime"
)

// Beam keeps Width candidate sequences in parallel and returns the
// best-scoring finished one. Width 1 degenerates to greedy.
type Beam struct {
	Width int
}

func (b Beam) Name() string { return fmt.Sprintf("beam-%d", b.Width) }

type candidate struct {
	history []int32 // includes the decoder-start seed
	score   float64 // sum of log probabilities
	done    bool
}

func (b Beam) Search(ctx context.Context, h runtime.Handle, source []int32, cfg Config) (Result, error) {
	width := b.Width
	if width < 1 {
		width = 1
	}
	beams := []candidate{{history: []int32{cfg.DecoderStart}}}
	for step := 0; step < cfg.MaxLength; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		var next []candidate
		expanded := false
		for _, c := range beams {
			if c.done {
				next = append(next, c)
				continue
			}
			expanded = true
			dist, err := h.Step(ctx, source, c.history)
			if err != nil {
				return Result{}, err
			}
			logProbs, err := logSoftmax(dist)
			if err != nil {
				return Result{}, err
			}
			for _, id := range topIDs(logProbs, width) {
				hist := append(append([]int32(nil), c.history...), id)
				next = append(next, candidate{
					history: hist,
					score:   c.score + logProbs[id],
					done:    id == cfg.EOS,
				})
			}
		}
		if !expanded {
			break
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].score > next[j].score })
		if len(next) > width {
			next = next[:width]
		}
		beams = next
	}
	best := beams[0]
	for _, c := range beams[1:] {
		if c.score > best.score {
			best = c
		}
	}
	out := best.history[1:] // drop the decoder-start seed
	return Result{IDs: out, LengthLimited: !best.done}, nil
}

// logSoftmax converts raw scores to log probabilities.
func logSoftmax(dist []float32) ([]float64, error) {
	if len(dist) == 0 {
		return nil, fmt.Errorf("empty distribution from runtime")
	}
	maxV := float64(dist[0])
	for _, v := range dist[1:] {
		if float64(v) > maxV {
			maxV = float64(v)
		}
	}
	var sum float64
	for _, v := range dist {
		sum += math.Exp(float64(v) - maxV)
	}
	logSum := maxV + math.Log(sum)
	out := make([]float64, len(dist))
	for i, v := range dist {
		out[i] = float64(v) - logSum
	}
	return out, nil
}

// topIDs returns the ids of the k highest log probabilities, ties broken
// toward lower ids.
func topIDs(logProbs []float64, k int) []int32 {
	ids := make([]int32, len(logProbs))
	for i := range ids {
		ids[i] = int32(i)
	}
	sort.SliceStable(ids, func(i, j int) bool { return logProbs[ids[i]] > logProbs[ids[j]] })
	if len(ids) > k {
		ids = ids[:k]
	}
	return ids
}
