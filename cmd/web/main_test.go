package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouter(t *testing.T) {
	r := newRouter("play.example.com")

	tests := []struct {
		method, path string
		wantCode     int
		wantBody     string
	}{
		{http.MethodGet, "/", http.StatusOK, "ssh -t play.example.com"},
		{http.MethodGet, "/controls", http.StatusOK, "Space          jump"},
		{http.MethodGet, "/healthz", http.StatusNoContent, ""},
		{http.MethodPost, "/", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.wantCode {
			t.Errorf("%s %s: code = %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
		}
		if !strings.Contains(rec.Body.String(), tt.wantBody) {
			t.Errorf("%s %s: body missing %q", tt.method, tt.path, tt.wantBody)
		}
	}
}

func TestLandingPageListsControls(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter("h").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Contains(rec.Body.String(), "{{.") {
		t.Error("landing page has unfilled placeholders")
	}
}
