package types

// TranslateRequest is the payload accepted by POST /translate.
type TranslateRequest struct {
	// Translation direction as "<src>-<dst>".
	// example: en-hi
	Direction string `json:"direction" example:"en-hi"`
	// Source text to translate. Required, bounded by the server body limit.
	// example: Hello, how are you?
	Text string `json:"text" example:"Hello, how are you?"`
	// Maximum number of tokens on either side. If omitted, the server default is used.
	// example: 256
	MaxLength int `json:"max_length,omitempty" example:"256"`
}

// StageLatency is the per-stage timing breakdown in milliseconds.
type StageLatency struct {
	Validate    int64 `json:"validate"`
	Model       int64 `json:"model"`
	Preprocess  int64 `json:"preprocess"`
	Encode      int64 `json:"encode"`
	Infer       int64 `json:"infer"`
	Decode      int64 `json:"decode"`
	Postprocess int64 `json:"postprocess"`
	Total       int64 `json:"total"`
}

// TranslateResponse is returned by POST /translate. Exactly one of
// Translation and Error carries information, keyed off OK.
type TranslateResponse struct {
	// True when the translation succeeded.
	// example: true
	OK bool `json:"ok"`
	// Translated text; present only when OK.
	// example: नमस्ते, आप कैसे हैं?
	Translation string `json:"translation,omitempty"`
	// Error kind; present only when not OK.
	// example: ValidationError
	Error string `json:"error,omitempty" example:"ValidationError"`
	// Human-readable error detail; present only when not OK.
	ErrorMessage string `json:"error_message,omitempty"`
	// True when the source text was truncated to max_length during encoding.
	TruncatedInput bool `json:"truncated_input,omitempty"`
	// True when generation stopped at the max_length ceiling before EOS.
	LengthLimited bool `json:"length_limited,omitempty"`
	// Per-stage latency breakdown.
	LatencyMS StageLatency `json:"latency_ms"`
	// Identifier of the model that served the request.
	// example: marian-en-hi-int8
	ModelID string `json:"model_id,omitempty" example:"marian-en-hi-int8"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// True when the service is up (independent of per-direction readiness).
	OK bool `json:"ok"`
	// Readiness per configured direction.
	Models map[string]bool `json:"models"`
}

// DirectionStats reports cache behavior for one direction.
type DirectionStats struct {
	// True once the bundle is loaded and ready.
	Loaded bool `json:"loaded"`
	// Wall time the load took, 0 when never loaded.
	// example: 412
	LoadTimeMS int64 `json:"load_time_ms"`
	// Get calls answered from the warm cache.
	HitCount uint64 `json:"hit_count"`
	// Get calls that triggered or waited on a load.
	MissCount uint64 `json:"miss_count"`
	// Last load failure, empty when none or cleared by reset.
	LastError string `json:"last_error,omitempty"`
	// Requests currently queued for this bundle.
	QueueLen int `json:"queue_len"`
	// Requests currently decoding on this bundle (0 or 1).
	Inflight int `json:"inflight"`
}

// StatsResponse is returned by GET /stats.
type StatsResponse struct {
	Directions map[string]DirectionStats `json:"directions"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
