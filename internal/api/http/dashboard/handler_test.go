package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"phishx/internal/core/blockedsvc"
	coredashboard "phishx/internal/core/dashboard"
	perrors "phishx/internal/errors"
	"phishx/internal/store/session"
)

type fakeView struct {
	refreshes int
	toggled   []bool
	domains   []string
	failWrite bool
}

func (f *fakeView) Snapshot(ctx context.Context) coredashboard.Snapshot {
	return coredashboard.Snapshot{QueryLog: []coredashboard.QueryLogRecord{}}
}

func (f *fakeView) Refresh(ctx context.Context) coredashboard.Snapshot {
	f.refreshes++
	return coredashboard.Snapshot{Error: coredashboard.FetchFailedMessage, FetchErrors: []coredashboard.FetchError{{Source: "stats"}}}
}

func (f *fakeView) ToggleProtection(ctx context.Context, enabled bool) (coredashboard.Snapshot, error) {
	f.toggled = append(f.toggled, enabled)
	if f.failWrite {
		return coredashboard.Snapshot{ActionError: coredashboard.ToggleFailedMessage}, perrors.New(perrors.KindUnavailable, "down")
	}
	return coredashboard.Snapshot{}, nil
}

func (f *fakeView) AddBlockedDomain(ctx context.Context, domain string) (coredashboard.Snapshot, error) {
	f.domains = append(f.domains, domain)
	if f.failWrite {
		return coredashboard.Snapshot{ActionError: coredashboard.BlocklistFailedMessage}, perrors.New(perrors.KindUpstream, "400")
	}
	return coredashboard.Snapshot{}, nil
}

type fakeEditor struct {
	state    blockedsvc.State
	loads    int
	toggled  []string
	failLoad  bool
	toggleErr error
	saveErr   error
}

func (f *fakeEditor) Load(ctx context.Context) (blockedsvc.State, error) {
	f.loads++
	if f.failLoad {
		return blockedsvc.State{Error: blockedsvc.LoadFailedMessage}, perrors.New(perrors.KindTimeout, "slow")
	}
	f.state.Loaded = true
	return f.state, nil
}

func (f *fakeEditor) Toggle(serviceId string) (blockedsvc.State, error) {
	if f.toggleErr != nil {
		return f.state, f.toggleErr
	}
	f.toggled = append(f.toggled, serviceId)
	return f.state, nil
}

func (f *fakeEditor) Save(ctx context.Context) (blockedsvc.State, error) {
	return f.state, f.saveErr
}

func (f *fakeEditor) State() blockedsvc.State {
	return f.state
}

type fixture struct {
	router *chi.Mux
	store  *session.SessionStore
	view   *fakeView
	editor *fakeEditor
}

func newFixture() *fixture {
	f := &fixture{view: &fakeView{}, editor: &fakeEditor{}}
	f.store = session.NewSessionStore(time.Hour, func() (coredashboard.ViewHandler, blockedsvc.EditorHandler) {
		return f.view, f.editor
	}, nil)

	h := NewRequestHandler(f.store)
	r := chi.NewRouter()
	r.Post("/v1/sessions", h.CreateSession)
	r.Delete("/v1/sessions/{sessionId}", h.DeleteSession)
	r.Get("/v1/sessions/{sessionId}/dashboard", h.GetDashboard)
	r.Post("/v1/sessions/{sessionId}/dashboard/refresh", h.RefreshDashboard)
	r.Post("/v1/sessions/{sessionId}/protection", h.ToggleProtection)
	r.Post("/v1/sessions/{sessionId}/blocklist", h.AddBlockedDomain)
	r.Get("/v1/sessions/{sessionId}/blocked-services", h.GetBlockedServices)
	r.Post("/v1/sessions/{sessionId}/blocked-services/{serviceId}/toggle", h.ToggleBlockedService)
	r.Post("/v1/sessions/{sessionId}/blocked-services/save", h.SaveBlockedServices)
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (%q)", err, rec.Body.String())
	}
	return env
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/v1/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var info session.SessionInfo
	if err := json.Unmarshal(decode(t, rec).Data, &info); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if info.Id == "" {
		t.Fatalf("expected session id")
	}

	if rec := f.do(http.MethodGet, "/v1/sessions/"+info.Id+"/dashboard", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := f.do(http.MethodDelete, "/v1/sessions/"+info.Id, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = f.do(http.MethodGet, "/v1/sessions/"+info.Id+"/dashboard", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Status != "fail" {
		t.Fatalf("expected fail status, got %q", env.Status)
	}
}

func TestRefreshReportsPartialFailure(t *testing.T) {
	f := newFixture()
	id := f.store.Create().Id

	rec := f.do(http.MethodPost, "/v1/sessions/"+id+"/dashboard/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap coredashboard.Snapshot
	if err := json.Unmarshal(decode(t, rec).Data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Error != coredashboard.FetchFailedMessage {
		t.Fatalf("expected banner %q, got %q", coredashboard.FetchFailedMessage, snap.Error)
	}
	if f.view.refreshes != 1 {
		t.Fatalf("expected 1 refresh, got %d", f.view.refreshes)
	}
}

func TestToggleProtection(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		failWrite bool
		code      int
		message   string
	}{
		{name: "disable", body: `{"enabled":false}`, code: http.StatusOK, message: "protection updated"},
		{name: "enable", body: `{"enabled":true}`, code: http.StatusOK, message: "protection updated"},
		{name: "missing field", body: `{}`, code: http.StatusBadRequest, message: "enabled is required"},
		{name: "unknown field", body: `{"enabled":true,"password":"x"}`, code: http.StatusBadRequest},
		{name: "upstream failure", body: `{"enabled":false}`, failWrite: true, code: http.StatusBadGateway, message: coredashboard.ToggleFailedMessage},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.view.failWrite = tc.failWrite
			id := f.store.Create().Id

			rec := f.do(http.MethodPost, "/v1/sessions/"+id+"/protection", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if env := decode(t, rec); tc.message != "" && env.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, env.Message)
			}
		})
	}
}

func TestAddBlockedDomain(t *testing.T) {
	f := newFixture()
	id := f.store.Create().Id

	if rec := f.do(http.MethodPost, "/v1/sessions/"+id+"/blocklist", `{"domain":"phish.example"}`); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(f.view.domains) != 1 || f.view.domains[0] != "phish.example" {
		t.Fatalf("unexpected domains %v", f.view.domains)
	}
	if rec := f.do(http.MethodPost, "/v1/sessions/"+id+"/blocklist", `{"domain":""}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	f.view.failWrite = true
	rec := f.do(http.MethodPost, "/v1/sessions/"+id+"/blocklist", `{"domain":"phish.example"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Message != coredashboard.BlocklistFailedMessage {
		t.Fatalf("expected %q, got %q", coredashboard.BlocklistFailedMessage, env.Message)
	}
}

func TestBlockedServicesFlow(t *testing.T) {
	f := newFixture()
	id := f.store.Create().Id
	base := "/v1/sessions/" + id + "/blocked-services"

	if rec := f.do(http.MethodGet, base, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := f.do(http.MethodGet, base, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if f.editor.loads != 1 {
		t.Fatalf("expected a single load, got %d", f.editor.loads)
	}
	f.do(http.MethodGet, base+"?reload=true", "")
	if f.editor.loads != 2 {
		t.Fatalf("expected reload, got %d loads", f.editor.loads)
	}

	if rec := f.do(http.MethodPost, base+"/youtube/toggle", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(f.editor.toggled) != 1 || f.editor.toggled[0] != "youtube" {
		t.Fatalf("unexpected toggles %v", f.editor.toggled)
	}

	if rec := f.do(http.MethodPost, base+"/save", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBlockedServicesFailures(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(e *fakeEditor)
		method  string
		suffix  string
		code    int
		message string
	}{
		{name: "load", setup: func(e *fakeEditor) { e.failLoad = true }, method: http.MethodGet, suffix: "", code: http.StatusBadGateway, message: blockedsvc.LoadFailedMessage},
		{name: "save", setup: func(e *fakeEditor) { e.saveErr = perrors.New(perrors.KindUnavailable, "down") }, method: http.MethodPost, suffix: "/save", code: http.StatusBadGateway, message: blockedsvc.SaveFailedMessage},
		{name: "save in progress", setup: func(e *fakeEditor) { e.saveErr = perrors.New(perrors.KindConflict, "save already in progress") }, method: http.MethodPost, suffix: "/save", code: http.StatusConflict, message: "save already in progress"},
		{name: "toggle before load", setup: func(e *fakeEditor) { e.toggleErr = blockedsvc.ErrNotLoaded }, method: http.MethodPost, suffix: "/youtube/toggle", code: http.StatusConflict, message: "blocked services not loaded"},
		{name: "save before load", setup: func(e *fakeEditor) { e.saveErr = blockedsvc.ErrNotLoaded }, method: http.MethodPost, suffix: "/save", code: http.StatusConflict, message: "blocked services not loaded"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			tc.setup(f.editor)
			id := f.store.Create().Id

			rec := f.do(tc.method, "/v1/sessions/"+id+"/blocked-services"+tc.suffix, "")
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if env := decode(t, rec); env.Message != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, env.Message)
			}
		})
	}
}

func TestUnknownSession(t *testing.T) {
	f := newFixture()
	targets := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/v1/sessions/nope/dashboard", ""},
		{http.MethodPost, "/v1/sessions/nope/dashboard/refresh", ""},
		{http.MethodPost, "/v1/sessions/nope/protection", `{"enabled":true}`},
		{http.MethodGet, "/v1/sessions/nope/blocked-services", ""},
		{http.MethodDelete, "/v1/sessions/nope", ""},
	}

	for _, tc := range targets {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if rec := f.do(tc.method, tc.path, tc.body); rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
		})
	}
}
