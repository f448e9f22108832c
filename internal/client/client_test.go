package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestPingWithRetry_ImmediateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := pingWithRetry(c); err != nil {
		t.Fatalf("pingWithRetry failed on immediate success: %v", err)
	}
}

func TestPingWithRetry_SucceedsAfterFailures(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := pingWithRetry(c); err != nil {
		t.Fatalf("pingWithRetry failed: %v (calls=%d)", err, calls.Load())
	}
	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 calls, got %d", calls.Load())
	}
}

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/version" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version":   "1.2.3",
			"gitCommit": "abc123",
			"buildDate": "2026-08-01",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	info, err := c.GetVersion()
	if err != nil {
		t.Fatalf("GetVersion failed: %v", err)
	}
	if info.Version != "1.2.3" || info.GitCommit != "abc123" {
		t.Fatalf("unexpected version info: %+v", info)
	}
}

func TestGetSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token")
	if err := c.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}
