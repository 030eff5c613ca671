package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCall_SendsOperationEnvelope(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"data":{"data":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	raw, err := c.Call(context.Background(), "notes.get", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	if gotPath != "/call" {
		t.Errorf("path = %q, want /call", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["operation"] != "notes.get" {
		t.Errorf("operation = %v", gotBody["operation"])
	}
	if _, ok := gotBody["params"].(map[string]any); !ok {
		t.Errorf("params = %v, want empty object", gotBody["params"])
	}
	if len(raw) == 0 {
		t.Error("expected raw envelope back")
	}
}

func TestCall_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Call(context.Background(), "notes.get", nil); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("auth header should be absent, got %q", gotAuth)
	}
}

func TestCall_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Call(context.Background(), "notes.get", nil); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestCall_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient(srv.URL, "")
	if _, err := c.Call(context.Background(), "notes.get", nil); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestCall_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "")
	if _, err := c.Call(ctx, "notes.get", nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
