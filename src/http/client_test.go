package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestMockHTTPClient(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.SetResponse("https://example.itch.io/game", &Response{
		StatusCode: 200,
		Body:       []byte("hello"),
	})

	resp, err := mock.Get(context.Background(), "https://example.itch.io/game", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || string(resp.Body) != "hello" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if _, err := mock.Get(context.Background(), "https://example.itch.io/other", ""); err == nil {
		t.Error("expected an error for an unconfigured URL")
	}

	mock.SetError("https://example.itch.io/broken", fmt.Errorf("boom"))
	if _, err := mock.Get(context.Background(), "https://example.itch.io/broken", ""); err == nil {
		t.Error("expected the configured error")
	}

	calls := mock.GetCalls()
	if len(calls) != 3 {
		t.Errorf("expected 3 recorded calls, got %d", len(calls))
	}
}

func TestMockHTTPClientPostForm(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.SetResponse("https://itch.io/claim", &Response{StatusCode: 200, Body: []byte("ok")})

	form := url.Values{}
	form.Set("csrf_token", "abc")

	if _, err := mock.PostForm(context.Background(), "https://itch.io/claim", form, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if posts := mock.PostCalls(); len(posts) != 1 || posts[0] != "https://itch.io/claim" {
		t.Errorf("expected the POST to be recorded, got %v", posts)
	}
	if calls := mock.GetCalls(); len(calls) != 1 {
		t.Errorf("expected POSTs to appear in the combined call log, got %v", calls)
	}
}

func TestRealHTTPClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ua=%s;cookie=%s", r.Header.Get("User-Agent"), r.Header.Get("Cookie"))
	}))
	defer server.Close()

	client := NewRealHTTPClient(http.DefaultTransport, "test-agent/1.0")

	resp, err := client.Get(context.Background(), server.URL, "session=s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "ua=test-agent/1.0;cookie=session=s3cret" {
		t.Errorf("headers not forwarded, body: %s", resp.Body)
	}
}

func TestRealHTTPClientPostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type '%s'", ct)
		}
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer server.Close()

	client := NewRealHTTPClient(http.DefaultTransport, "test-agent/1.0")

	form := url.Values{}
	form.Set("csrf_token", "abc123")

	resp, err := client.PostForm(context.Background(), server.URL, form, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != "csrf_token=abc123" {
		t.Errorf("form body not encoded, got '%s'", resp.Body)
	}
}

func TestRealHTTPClientHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(429)
	}))
	defer server.Close()

	client := NewRealHTTPClient(http.DefaultTransport, "test-agent/1.0")

	resp, err := client.Get(context.Background(), server.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 429 {
		t.Errorf("expected status 429, got %d", resp.StatusCode)
	}
	if resp.Headers["Retry-After"] != "30" {
		t.Errorf("expected Retry-After header to survive, got %v", resp.Headers)
	}
}
