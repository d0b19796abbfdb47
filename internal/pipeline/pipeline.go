// Package pipeline orchestrates one translation request end to end:
// validate, bundle lookup, preprocess, encode, generation, decode,
// postprocess. Every failure, from any stage, comes back as a typed result
// rather than a raw error, so the transport layer only maps kinds to status
// codes.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lingod/internal/decoder"
	"lingod/internal/manager"
	"lingod/internal/metrics"
	"lingod/internal/textproc"
	"lingod/internal/tokenizer"
	"lingod/pkg/types"
)

// Result error kinds, stable across the API surface.
const (
	KindValidation   = "ValidationError"
	KindModelLoad    = "ModelLoadError"
	KindTokenization = "TokenizationError"
	KindInference    = "InferenceError"
	KindTimeout      = "TimeoutError"
)

const defaultMaxLength = 256

// Config carries the pipeline's collaborators and tunables.
type Config struct {
	Manager *manager.Manager
	// DefaultMaxLength applies when the request omits max_length.
	DefaultMaxLength int
	// Strategy selects output tokens; nil means greedy.
	Strategy decoder.Strategy
	Logger   *zerolog.Logger
}

// Pipeline is safe for concurrent use; all per-request state is local to
// Translate.
type Pipeline struct {
	mgr       *manager.Manager
	maxLength int
	strategy  decoder.Strategy
	log       zerolog.Logger
}

func New(cfg Config) *Pipeline {
	p := &Pipeline{
		mgr:       cfg.Manager,
		maxLength: cfg.DefaultMaxLength,
		strategy:  cfg.Strategy,
		log:       zerolog.Nop(),
	}
	if p.maxLength <= 0 {
		p.maxLength = defaultMaxLength
	}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	}
	return p
}

// Translate runs the full stage sequence. It never returns an error: every
// failure is folded into the response with ok=false, a kind, and a message.
func (p *Pipeline) Translate(ctx context.Context, req types.TranslateRequest) types.TranslateResponse {
	r := newRequest(req.Direction)
	var resp types.TranslateResponse
	total := time.Now()

	// Validate.
	stage := time.Now()
	d, err := types.ParseDirection(req.Direction)
	if err != nil {
		// Unparsable client input must not become a metric label.
		r.direction = "invalid"
		resp.LatencyMS.Validate = msSince(stage)
		return p.fail(r, &resp, total, KindValidation, err)
	}
	if !p.mgr.Known(d) {
		r.direction = "unknown"
		resp.LatencyMS.Validate = msSince(stage)
		return p.fail(r, &resp, total, KindValidation,
			errors.New("unknown direction: "+d.String()))
	}
	if strings.TrimSpace(req.Text) == "" {
		resp.LatencyMS.Validate = msSince(stage)
		return p.fail(r, &resp, total, KindValidation, errors.New("text is required"))
	}
	maxLen := req.MaxLength
	if maxLen <= 0 {
		maxLen = p.maxLength
	}
	resp.LatencyMS.Validate = p.observe(d, "validate", stage)
	r.advance()

	// Bundle lookup, loading on first demand.
	stage = time.Now()
	b, err := p.mgr.Get(ctx, d)
	if err != nil {
		resp.LatencyMS.Model = msSince(stage)
		return p.fail(r, &resp, total, classify(err), err)
	}
	resp.ModelID = b.ModelID
	resp.LatencyMS.Model = p.observe(d, "model", stage)
	r.advance()

	// Preprocess.
	stage = time.Now()
	clean, err := textproc.Preprocess(req.Text)
	if err != nil {
		resp.LatencyMS.Preprocess = msSince(stage)
		return p.fail(r, &resp, total, KindValidation, err)
	}
	resp.LatencyMS.Preprocess = p.observe(d, "preprocess", stage)
	r.advance()

	// Encode.
	stage = time.Now()
	enc, err := b.Tokenizer.Encode(clean, maxLen)
	if err != nil {
		resp.LatencyMS.Encode = msSince(stage)
		return p.fail(r, &resp, total, classify(err), err)
	}
	resp.TruncatedInput = enc.Truncated
	resp.LatencyMS.Encode = p.observe(d, "encode", stage)
	r.advance()

	// Generation. Admission serializes decodes per bundle; the slot is held
	// only for this stage and released on every path out of it.
	stage = time.Now()
	res, err := p.generate(ctx, d, b, enc.IDs, maxLen)
	if err != nil {
		resp.LatencyMS.Infer = msSince(stage)
		return p.fail(r, &resp, total, classify(err), err)
	}
	resp.LengthLimited = res.LengthLimited
	resp.LatencyMS.Infer = p.observe(d, "infer", stage)
	r.advance()

	// Decode ids back to text. A failure here means the model emitted an id
	// outside the vocabulary, which is a runtime fault, not a client one.
	stage = time.Now()
	raw, err := b.Tokenizer.Decode(res.IDs)
	if err != nil {
		resp.LatencyMS.Decode = msSince(stage)
		return p.fail(r, &resp, total, KindInference, err)
	}
	resp.LatencyMS.Decode = p.observe(d, "decode", stage)
	r.advance()

	// Postprocess.
	stage = time.Now()
	out := textproc.Postprocess(raw, d.Target())
	resp.LatencyMS.Postprocess = p.observe(d, "postprocess", stage)
	r.advance()

	r.advance() // postprocessed -> completed
	resp.OK = true
	resp.Translation = out
	resp.LatencyMS.Total = msSince(total)
	metrics.RequestCompleted(d.String(), true)
	p.log.Debug().Str("direction", d.String()).
		Int("input_len", len(enc.IDs)).Int("output_len", len(res.IDs)).
		Int64("total_ms", resp.LatencyMS.Total).Msg("translate ok")
	return resp
}

// generate acquires the bundle's decode slot, runs the search strategy, and
// releases the slot. Release runs on every exit path, including panic.
func (p *Pipeline) generate(ctx context.Context, d types.Direction, b *manager.Bundle, source []int32, maxLen int) (decoder.Result, error) {
	release, err := p.mgr.BeginTranslation(ctx, d)
	if err != nil {
		return decoder.Result{}, err
	}
	defer release()

	sp := b.Tokenizer.Specials()
	return decoder.DecodeSequence(ctx, b.Handle, source, decoder.Config{
		MaxLength:    maxLen,
		EOS:          sp.EOS,
		DecoderStart: sp.DecoderStart,
	}, p.strategy)
}

// fail folds err into a typed response and records the failure once.
func (p *Pipeline) fail(r *request, resp *types.TranslateResponse, total time.Time, kind string, err error) types.TranslateResponse {
	failedAt := r.state
	r.fail()
	resp.OK = false
	resp.Error = kind
	resp.ErrorMessage = err.Error()
	resp.LatencyMS.Total = msSince(total)
	metrics.RequestCompleted(r.direction, false)
	metrics.RequestFailed(r.direction, kind)
	p.log.Warn().Str("direction", r.direction).Str("kind", kind).
		Str("stage", string(failedAt)).Err(err).Msg("translate failed")
	return *resp
}

// observe records the stage duration and returns it in milliseconds.
func (p *Pipeline) observe(d types.Direction, stage string, start time.Time) int64 {
	dur := time.Since(start)
	metrics.ObserveStage(d.String(), stage, dur)
	return dur.Milliseconds()
}

func msSince(start time.Time) int64 { return time.Since(start).Milliseconds() }

// classify maps an error from any collaborator to its result kind.
func classify(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindTimeout
	case manager.IsTimeout(err), manager.IsDraining(err):
		return KindTimeout
	case manager.IsUnknownDirection(err):
		return KindValidation
	case manager.IsModelLoad(err):
		return KindModelLoad
	case tokenizer.IsTokenizationError(err):
		return KindTokenization
	default:
		return KindInference
	}
}
