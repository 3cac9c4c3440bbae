package netx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestGetJSON(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotAccept string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{"id":1,"title":"T"}`))
		}))
		defer ts.Close()

		var p payload
		if err := GetJSON(context.Background(), ts.Client(), ts.URL+"/posts/1", &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotAccept != "application/json" {
			t.Fatalf("Accept = %q, want application/json", gotAccept)
		}
		if p.ID != 1 || p.Title != "T" {
			t.Fatalf("decoded = %+v", p)
		}
	})

	t.Run("non-2xx -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("{}"))
		}))
		defer ts.Close()

		var p payload
		err := GetJSON(context.Background(), ts.Client(), ts.URL, &p)
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want *StatusError", err)
		}
		if se.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", se.StatusCode)
		}
		if !strings.Contains(err.Error(), "404") {
			t.Fatalf("error = %q, want to contain 404", err.Error())
		}
	})

	t.Run("bad JSON", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer ts.Close()

		var p payload
		err := GetJSON(context.Background(), ts.Client(), ts.URL, &p)
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("error = %v, want decode error", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		var p payload
		err := GetJSON(context.Background(), http.DefaultClient, ts.URL, &p)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var se *StatusError
		if errors.As(err, &se) {
			t.Fatalf("got status error for a closed server: %v", err)
		}
	})
}
