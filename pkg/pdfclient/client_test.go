package pdfclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/render" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var req struct {
			Template string            `json:"template"`
			Fields   map[string]string `json:"fields"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Template != "quote_confirmation" {
			t.Errorf("template = %q, want quote_confirmation", req.Template)
		}
		if req.Fields["order_number"] != "ORD202605100001" {
			t.Errorf("order_number = %q", req.Fields["order_number"])
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7 filled"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	doc, err := client.Render(context.Background(), "quote_confirmation", map[string]string{
		"order_number": "ORD202605100001",
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(doc) != "%PDF-1.7 filled" {
		t.Errorf("doc = %q, want filled document bytes", doc)
	}
}

func TestRenderFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "empty document body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL)
			if _, err := client.Render(context.Background(), "quote_confirmation", nil); !errors.Is(err, ErrRenderFailed) {
				t.Fatalf("error = %v, want ErrRenderFailed", err)
			}
		})
	}
}

func TestRenderUnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	if _, err := client.Render(context.Background(), "quote_confirmation", nil); !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("error = %v, want ErrRenderFailed", err)
	}
}
