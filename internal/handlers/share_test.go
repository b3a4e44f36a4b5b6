package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/service"
)

func TestShareBrain_EnableReturnsHash(t *testing.T) {
	sharing := &mockSharing{enableHash: "aB3dE5fG7h"}
	s := &service.Service{
		Authorization: &mockAuth{parseID: "user-a"},
		Sharing:       sharing,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/brain/share", "tok", `{"share":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if sharing.enableCalls != 1 || sharing.lastEnableUser != "user-a" {
		t.Fatalf("enable not called for the caller: %+v", sharing)
	}

	var out struct {
		Hash string `json:"hash"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Hash != "aB3dE5fG7h" {
		t.Fatalf("hash: got %q", out.Hash)
	}
}

func TestShareBrain_DisableRemovesLink(t *testing.T) {
	sharing := &mockSharing{}
	s := &service.Service{
		Authorization: &mockAuth{parseID: "user-a"},
		Sharing:       sharing,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/brain/share", "tok", `{"share":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if sharing.disableCalls != 1 || sharing.enableCalls != 0 {
		t.Fatalf("expected one disable and no enable, got %+v", sharing)
	}

	var out struct {
		Msg string `json:"msg"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Msg != "Removed link" {
		t.Fatalf("unexpected msg %q", out.Msg)
	}
}

func TestGetSharedBrain_UnknownHash(t *testing.T) {
	sharing := &mockSharing{resolveErr: service.ErrLinkNotFound}
	s := &service.Service{Sharing: sharing}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brain/nosuchhash", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusLengthRequired {
		t.Fatalf("expected 411 for unknown hash, got %d", w.Code)
	}
	if sharing.lastResolveHash != "nosuchhash" {
		t.Fatalf("resolved %q, want path parameter", sharing.lastResolveHash)
	}
}

func TestGetSharedBrain_NoAuthRequired(t *testing.T) {
	sharing := &mockSharing{
		resolveResp: models.SharedBrain{
			Username: "alice",
			Content: []models.Content{
				{ID: "c1", Title: "Go blog", Link: "https://go.dev/blog", Type: "article", Tags: []string{}, UserID: "user-a"},
			},
		},
	}
	// no Authorization service wired at all: the route must not need one
	s := &service.Service{Sharing: sharing}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brain/aB3dE5fG7h", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out models.SharedBrain
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Username != "alice" || len(out.Content) != 1 || out.Content[0].ID != "c1" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}

func TestGetSharedBrain_VanishedOwner(t *testing.T) {
	s := &service.Service{Sharing: &mockSharing{resolveErr: service.ErrOwnerNotFound}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brain/orphanhash", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusLengthRequired {
		t.Fatalf("expected 411 for vanished owner, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Status      string `json:"status"`
		Timestamp   string `json:"timestamp"`
		Environment string `json:"environment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != "OK" || out.Timestamp == "" || out.Environment != "test" {
		t.Fatalf("unexpected health payload: %s", w.Body.String())
	}
}
