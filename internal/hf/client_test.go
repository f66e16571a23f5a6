package hf

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecognize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.URL.Path; got != "/models/d4data/biobert-cased-finetuned-ner" {
			t.Errorf("unexpected path: %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test" {
			t.Errorf("unexpected auth header: %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if req["inputs"] != "Type 2 diabetes in adults" {
			t.Errorf("unexpected inputs: %q", req["inputs"])
		}

		w.Write([]byte(`[
			{"entity_group":"Disease_disorder","word":"Type 2 diabetes","score":0.98},
			{"entity_group":"Age","word":"adults","score":0.91}
		]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	entities, err := c.Recognize(context.Background(), "Type 2 diabetes in adults", "hf_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if entities[0].Word != "Type 2 diabetes" {
		t.Errorf("expected first word 'Type 2 diabetes', got %q", entities[0].Word)
	}
	if entities[1].Group != "Age" {
		t.Errorf("expected second group 'Age', got %q", entities[1].Group)
	}
}

func TestRecognize_CustomModelPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithModel("org/some-model"))
	if _, err := c.Recognize(context.Background(), "text", "hf_test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/models/org/some-model" {
		t.Errorf("unexpected path: %q", gotPath)
	}
}

func TestRecognize_MissingToken(t *testing.T) {
	c := NewClient()
	if _, err := c.Recognize(context.Background(), "text", ""); err == nil {
		t.Error("expected error for missing token")
	}
}

func TestRecognize_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model is loading"}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.Recognize(context.Background(), "text", "hf_test"); err == nil {
		t.Error("expected error for HTTP 503")
	}
}

func TestRecognize_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"unexpected shape"}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.Recognize(context.Background(), "text", "hf_test"); err == nil {
		t.Error("expected error for non-array response body")
	}
}
