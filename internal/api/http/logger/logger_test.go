package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

func TestPeerIp(t *testing.T) {
	req := &http.Request{RemoteAddr: "192.168.0.1:1234"}
	if got := peerIp(req); got != "192.168.0.1" {
		t.Fatalf("expected host only, got %q", got)
	}

	req = &http.Request{RemoteAddr: "not-a-host-port"}
	if got := peerIp(req); got != "not-a-host-port" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestSeverityForAction(t *testing.T) {
	if got := severityForAction("protection.disable"); got != SEV_CRITICAL {
		t.Fatalf("expected %d, got %d", SEV_CRITICAL, got)
	}
	if got := severityForAction("unknown.action"); got != SEV_LOW {
		t.Fatalf("expected %d, got %d", SEV_LOW, got)
	}
}

func TestBump(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "info", input: "information", expect: "low"},
		{name: "low", input: "low", expect: "medium"},
		{name: "medium", input: "medium", expect: "high"},
		{name: "high", input: "high", expect: "critical"},
		{name: "unknown", input: "custom", expect: "custom"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := bump(tc.input)
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func newTestRouter(buf *bytes.Buffer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware(JsonLineLogger{Out: buf}, "", "node-1"))

	r.Get("/api/adguard/*", func(w http.ResponseWriter, r *http.Request) {
		SetTarget(r.Context(), Target{UpstreamPath: "/control/" + chi.URLParam(r, "*")})
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/adguard/*", func(w http.ResponseWriter, r *http.Request) {
		SetReason(r.Context(), "relay failed")
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Post("/v1/sessions/{sessionId}/protection", func(w http.ResponseWriter, r *http.Request) {
		enabled := false
		SetAction(r.Context(), "protection.disable")
		SetTarget(r.Context(), Target{SessionId: chi.URLParam(r, "sessionId"), Enabled: &enabled})
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/unlisted", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestLoggerMiddleware(t *testing.T) {
	cases := []struct {
		name     string
		method   string
		path     string
		action   string
		severity string
		status   string
		code     int
	}{
		{name: "proxy read", method: http.MethodGet, path: "/api/adguard/stats", action: "proxy.read", severity: "information", status: "allow", code: 200},
		{name: "proxy write failed", method: http.MethodPost, path: "/api/adguard/filtering/config", action: "proxy.write", severity: "high", status: "error", code: 500},
		{name: "runtime action", method: http.MethodPost, path: "/v1/sessions/abc/protection", action: "protection.disable", severity: "critical", status: "allow", code: 200},
		{name: "unlisted", method: http.MethodGet, path: "/unlisted", action: "unknown", severity: "low", status: "allow", code: 200},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			newTestRouter(&buf).ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			var ev Event
			if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
				t.Fatalf("decode event: %v (%q)", err, buf.String())
			}
			if ev.Action != tc.action {
				t.Fatalf("expected action %q, got %q", tc.action, ev.Action)
			}
			if ev.Severity != tc.severity {
				t.Fatalf("expected severity %q, got %q", tc.severity, ev.Severity)
			}
			if ev.Result.Status != tc.status || ev.Result.Code != tc.code {
				t.Fatalf("expected %s/%d, got %s/%d", tc.status, tc.code, ev.Result.Status, ev.Result.Code)
			}
			if ev.EventId == "" || ev.CorrelationId == "" {
				t.Fatalf("expected event and correlation ids, got %+v", ev)
			}
			if ev.Runtime.Component != "phishx" || ev.Runtime.Node != "node-1" {
				t.Fatalf("unexpected runtime %+v", ev.Runtime)
			}
		})
	}
}

func TestLoggerMiddlewareTarget(t *testing.T) {
	var buf bytes.Buffer
	router := newTestRouter(&buf)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/adguard/querylog?limit=100", nil))
	var ev Event
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Target.UpstreamPath != "/control/querylog" {
		t.Fatalf("expected upstream path, got %q", ev.Target.UpstreamPath)
	}
	if ev.Request.Path != "/api/adguard/querylog" {
		t.Fatalf("expected path without query, got %q", ev.Request.Path)
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/sessions/abc/protection", nil))
	ev = Event{}
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Target.SessionId != "abc" || ev.Target.Enabled == nil || *ev.Target.Enabled {
		t.Fatalf("unexpected target %+v", ev.Target)
	}
}

func TestSettersWithoutEvent(t *testing.T) {
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	SetAction(ctx, "x")
	SetSeverity(ctx, SEV_HIGH)
	SetTarget(ctx, Target{Domain: "example.org"})
	SetReason(ctx, "r")
	PutExtra(ctx, "k", "v")
	if FromContext(ctx) != nil {
		t.Fatalf("expected no event")
	}
}
