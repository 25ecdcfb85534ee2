package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appforge/appforge-api/internal/core/domain"
)

const validReply = "```tsx\nimport React, { useState } from 'react';\n\nexport default function TodoApp() {\nconst [items, setItems] = useState([]);\nreturn <div className=\"p-4\">todo</div>;\n}\n```"

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, zerolog.Nop())
	return client, srv
}

func writeCompletion(w http.ResponseWriter, content string) {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func TestGenerate_Success(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer auth")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		writeCompletion(w, validReply)
	})

	code, err := client.Generate(context.Background(), "Create a todo app with dark mode")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if strings.Contains(code, "```") {
		t.Fatalf("fences not stripped: %q", code)
	}
	if !strings.Contains(code, "export default function TodoApp") {
		t.Fatalf("component body missing: %q", code)
	}
	if gotReq.MaxTokens != maxTokens || gotReq.Temperature != temperature {
		t.Fatalf("sampling params not fixed: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "todo app with dark mode") {
		t.Fatalf("prompt not embedded in template")
	}
}

func TestGenerate_RateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "anything at all")
	if !errors.Is(err, domain.ErrGeneratorRateLimited) {
		t.Fatalf("expected ErrGeneratorRateLimited, got %v", err)
	}
}

func TestGenerate_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Generate(context.Background(), "anything at all")
	if !errors.Is(err, domain.ErrGeneratorNotConfigured) {
		t.Fatalf("expected ErrGeneratorNotConfigured, got %v", err)
	}
}

func TestGenerate_NoAPIKey(t *testing.T) {
	client := NewClient(Config{}, zerolog.Nop())

	_, err := client.Generate(context.Background(), "anything at all")
	if !errors.Is(err, domain.ErrGeneratorNotConfigured) {
		t.Fatalf("expected ErrGeneratorNotConfigured, got %v", err)
	}
}

func TestGenerate_FallbackMode(t *testing.T) {
	client := NewClient(Config{Fallback: true}, zerolog.Nop())

	code, err := client.Generate(context.Background(), "a weather widget")
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if !strings.Contains(code, "export default function GeneratedApp") {
		t.Fatalf("fallback component missing: %q", code)
	}
	if !strings.Contains(code, "a weather widget") {
		t.Fatalf("prompt not echoed in fallback")
	}
}

func TestGenerate_EmptyChoice(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Generate(context.Background(), "anything at all")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerate_RejectsCodeWithoutExport(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "import React from 'react';\nconst App = () => <div/>;")
	})

	_, err := client.Generate(context.Background(), "anything at all")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}
