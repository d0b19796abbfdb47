package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, the HTTP layer stays quiet.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// logStart records request intake. Only lengths, never payload text.
func logStart(r *http.Request, direction string, textLen int) {
	if zlog == nil {
		return
	}
	z := zlog.Info().Str("path", r.URL.Path).Str("direction", direction).Int("text_len", textLen)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("translate start")
}

// logEnd records the final status and duration of a request.
func logEnd(r *http.Request, status int, dur time.Duration) {
	if zlog == nil {
		return
	}
	z := zlog.Info().Int("status", status).Dur("dur", dur)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("translate end")
}
