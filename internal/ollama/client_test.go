package ollama

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("probe hit %s, want /api/tags", r.URL.Path)
		}
		w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.Check(context.Background()); got != StatusReady {
		t.Errorf("Check = %v, want ready", got)
	}
}

func TestCheckNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.Check(context.Background()); got != StatusNotReady {
		t.Errorf("Check = %v, want not-ready", got)
	}
}

func TestCheckConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	c := NewClient("http://" + addr)

	start := time.Now()
	got := c.Check(context.Background())
	elapsed := time.Since(start)

	if got != StatusNotReady {
		t.Errorf("Check = %v, want not-ready", got)
	}
	if elapsed > 3*time.Second {
		t.Errorf("probe took %v, want under the configured timeout", elapsed)
	}
}

func TestTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama3.2:3b","size":2019393189}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	tags, err := c.Tags(context.Background())
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags.Models) != 1 || tags.Models[0].Name != "llama3.2:3b" {
		t.Errorf("unexpected tags: %+v", tags)
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"version":"0.5.7"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	v, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v != "0.5.7" {
		t.Errorf("version = %q", v)
	}
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"embedding":[0.25,-0.5]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	vec, err := c.Embed(context.Background(), "nomic-embed-text", "hello")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 2 || vec[0] != 0.25 || vec[1] != -0.5 {
		t.Errorf("unexpected vector: %v", vec)
	}
}
