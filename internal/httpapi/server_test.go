package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lingod/internal/pipeline"
	"lingod/pkg/types"
)

type mockService struct {
	resp   types.TranslateResponse
	health map[string]bool
	stats  types.StatsResponse
	ready  bool

	lastReq types.TranslateRequest
}

func (m *mockService) Translate(ctx context.Context, req types.TranslateRequest) types.TranslateResponse {
	m.lastReq = req
	return m.resp
}
func (m *mockService) Health() map[string]bool    { return m.health }
func (m *mockService) Stats() types.StatsResponse { return m.stats }
func (m *mockService) Ready() bool                { return m.ready }

func postTranslate(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/translate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestTranslateOK(t *testing.T) {
	svc := &mockService{resp: types.TranslateResponse{
		OK: true, Translation: "नमस्ते", ModelID: "marian-en-hi-int8",
	}}
	r := NewMux(svc)
	w := postTranslate(t, r, `{"direction":"en-hi","text":"Hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.TranslateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !body.OK || body.Translation != "नमस्ते" {
		t.Fatalf("body=%+v", body)
	}
	if svc.lastReq.Direction != "en-hi" || svc.lastReq.Text != "Hello" {
		t.Fatalf("request not forwarded: %+v", svc.lastReq)
	}
}

func TestTranslateErrorKindMapping(t *testing.T) {
	cases := []struct {
		kind string
		want int
	}{
		{pipeline.KindValidation, http.StatusBadRequest},
		{pipeline.KindTokenization, http.StatusBadRequest},
		{pipeline.KindTimeout, http.StatusTooManyRequests},
		{pipeline.KindModelLoad, http.StatusServiceUnavailable},
		{pipeline.KindInference, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			svc := &mockService{resp: types.TranslateResponse{
				OK: false, Error: tc.kind, ErrorMessage: "boom",
			}}
			r := NewMux(svc)
			w := postTranslate(t, r, `{"direction":"en-hi","text":"Hello"}`)
			if w.Code != tc.want {
				t.Fatalf("kind %s: status=%d want=%d", tc.kind, w.Code, tc.want)
			}
			var body types.TranslateResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if body.Error != tc.kind {
				t.Fatalf("body error=%q", body.Error)
			}
		})
	}
}

func TestTranslateBadJSON(t *testing.T) {
	r := NewMux(&mockService{})
	w := postTranslate(t, r, "not-json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Code != http.StatusBadRequest {
		t.Fatalf("body=%+v", body)
	}
}

func TestTranslateUnsupportedMediaType(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/translate", bytes.NewBufferString(`{"direction":"en-hi","text":"hi"}`))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestTranslateBodyTooLarge(t *testing.T) {
	r := NewMux(&mockService{})
	big := make([]byte, (1<<20)+10)
	for i := range big {
		big[i] = 'a'
	}
	w := postTranslate(t, r, string(big))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too-large body, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	svc := &mockService{health: map[string]bool{"en-hi": true, "hi-en": false}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !body.OK || !body.Models["en-hi"] || body.Models["hi-en"] {
		t.Fatalf("body=%+v", body)
	}
}

func TestStatsHandler(t *testing.T) {
	svc := &mockService{stats: types.StatsResponse{
		Directions:    map[string]types.DirectionStats{"en-hi": {Loaded: true, HitCount: 3}},
		UptimeSeconds: 42,
	}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.UptimeSeconds != 42 || body.Directions["en-hi"].HitCount != 3 {
		t.Fatalf("body=%+v", body)
	}
}

func TestHealthz(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	r := NewMux(&mockService{ready: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "loading") {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
