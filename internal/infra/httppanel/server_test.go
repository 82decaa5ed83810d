package httppanel_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"remote-control/config"
	"remote-control/internal/application"
	"remote-control/internal/domain"
	"remote-control/internal/infra/httppanel"
	"remote-control/internal/remote"
)

var _ httppanel.Panel = (*application.Panel)(nil)

type mockPanel struct {
	presses []domain.Press
	err     error
}

func (m *mockPanel) Press(_ context.Context, press domain.Press) (string, error) {
	m.presses = append(m.presses, press)
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("%s %d", press.Button, press.Slot), nil
}

func (m *mockPanel) Layout() []domain.SlotView {
	return []domain.SlotView{{Slot: 0, On: "lamp.on", Off: "lamp.off"}}
}

func (m *mockPanel) Macros() []domain.MacroView {
	return []domain.MacroView{{Name: "evening", Commands: []string{"lamp.on"}}}
}

func (m *mockPanel) Appliances() []domain.ApplianceState {
	return []domain.ApplianceState{{Name: "lamp", Kind: domain.ApplianceKindLight, On: true}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func do(t *testing.T, h http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_PressEndpoints(t *testing.T) {
	panel := &mockPanel{}
	handler := httppanel.NewServer(":0", "", panel, discardLogger()).Handler()

	tests := []struct {
		target string
		want   domain.Press
	}{
		{"/slots/2/on", domain.Press{Button: domain.ButtonOn, Slot: 2}},
		{"/slots/5/off", domain.Press{Button: domain.ButtonOff, Slot: 5}},
		{"/undo", domain.Press{Button: domain.ButtonUndo}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, handler, http.MethodPost, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
			}

			last := panel.presses[len(panel.presses)-1]
			if last != tt.want {
				t.Errorf("press: got %+v, want %+v", last, tt.want)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["status"] != "ok" {
				t.Errorf("status: got %s", body["status"])
			}
		})
	}
}

func TestServer_PressErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"bad slot", "/slots/abc/on", nil, http.StatusBadRequest},
		{"out of range", "/slots/9/on", &remote.SlotError{Slot: 9, Capacity: 7}, http.StatusNotFound},
		{"other failure", "/slots/1/off", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := &mockPanel{err: tt.err}
			handler := httppanel.NewServer(":0", "", panel, discardLogger()).Handler()

			rec := do(t, handler, http.MethodPost, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status code: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestServer_AuthToken(t *testing.T) {
	authToken := "test-secret-token-123"
	handler := httppanel.NewServer(":0", authToken, &mockPanel{}, discardLogger()).Handler()

	tests := []struct {
		name       string
		target     string
		header     map[string]string
		wantStatus int
	}{
		{"valid token in header", "/undo", map[string]string{"X-Auth-Token": authToken}, http.StatusOK},
		{"valid token in query", "/undo?token=" + authToken, nil, http.StatusOK},
		{"wrong token", "/undo", map[string]string{"X-Auth-Token": "nope"}, http.StatusUnauthorized},
		{"missing token", "/slots/0/on", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, http.MethodPost, tt.target, tt.header)
			if rec.Code != tt.wantStatus {
				t.Errorf("status code: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	rec := do(t, handler, http.MethodGet, "/slots", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("read endpoints should not need a token: got %d", rec.Code)
	}
}

func TestServer_RateLimit(t *testing.T) {
	handler := httppanel.NewServer(":0", "", &mockPanel{}, discardLogger()).Handler()
	header := map[string]string{"X-Real-IP": "10.0.0.1"}

	for i := 0; i < 30; i++ {
		if rec := do(t, handler, http.MethodPost, "/undo", header); rec.Code != http.StatusOK {
			t.Fatalf("press %d: got %d", i, rec.Code)
		}
	}

	if rec := do(t, handler, http.MethodPost, "/undo", header); rec.Code != http.StatusTooManyRequests {
		t.Errorf("press 31: got %d, want %d", rec.Code, http.StatusTooManyRequests)
	}

	other := map[string]string{"X-Real-IP": "10.0.0.2"}
	if rec := do(t, handler, http.MethodPost, "/undo", other); rec.Code != http.StatusOK {
		t.Errorf("other client: got %d", rec.Code)
	}
}

func TestServer_HealthReflectsLifecycle(t *testing.T) {
	server := httppanel.NewServer("127.0.0.1:0", "", &mockPanel{}, discardLogger())
	handler := server.Handler()

	if rec := do(t, handler, http.MethodGet, "/health", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("before start: got %d", rec.Code)
	}

	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if rec := do(t, handler, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("after start: got %d", rec.Code)
	}

	if err := server.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	if err := server.Stop(); err != nil {
		t.Errorf("second Stop error: %v", err)
	}
}

func TestServer_EndToEnd(t *testing.T) {
	logger := discardLogger()
	ctrl, home, err := application.BuildRemote(context.Background(), config.Default(), logger)
	if err != nil {
		t.Fatalf("BuildRemote error: %v", err)
	}
	panel := application.NewPanel(ctrl, home, &application.NoopNotifier{}, logger)

	srv := httptest.NewServer(httppanel.NewServer(":0", "", panel, logger).Handler())
	defer srv.Close()

	post := func(path string) {
		t.Helper()
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST %s: status %d", path, resp.StatusCode)
		}
	}

	post("/slots/3/on")

	resp, err := http.Get(srv.URL + "/appliances")
	if err != nil {
		t.Fatalf("GET /appliances: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Appliances []domain.ApplianceState `json:"appliances"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding appliances: %v", err)
	}
	for _, a := range body.Appliances {
		if !a.On {
			t.Errorf("%s should be active after party mode", a.Name)
		}
	}

	post("/undo")

	for _, a := range panel.Appliances() {
		if a.On {
			t.Errorf("%s should be inactive after undo", a.Name)
		}
	}

	slots, err := http.Get(srv.URL + "/slots")
	if err != nil {
		t.Fatalf("GET /slots: %v", err)
	}
	defer slots.Body.Close()
	raw, _ := io.ReadAll(slots.Body)
	if !strings.Contains(string(raw), `"on":"party_on"`) {
		t.Errorf("slots body missing party_on: %s", raw)
	}
	if !strings.Contains(string(raw), `{"name":"party_on","commands":["living_room_light.on","stereo.on","garage_door.up"]}`) {
		t.Errorf("slots body missing party_on members: %s", raw)
	}
}
