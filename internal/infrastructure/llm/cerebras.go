// Package llm implements the outbound code-generation client against a
// Cerebras-compatible chat-completions API.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/appforge/appforge-api/internal/codefmt"
	"github.com/appforge/appforge-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.cerebras.ai/v1"
	defaultModel   = "llama3.1-70b"
	defaultTimeout = 60 * time.Second

	maxTokens   = 4000
	temperature = 0.7
	topP        = 0.9

	systemMessage = "You are an expert React developer who generates clean, functional React components."
)

// Config captures the settings for the Cerebras client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	// Fallback serves a canned component instead of failing when the
	// upstream call cannot be made. Local testing only; never enable in
	// production.
	Fallback bool
}

// Client calls the model and post-processes its reply into acceptable
// component source.
type Client struct {
	http     *resty.Client
	apiKey   string
	model    string
	fallback bool
	log      zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:     cli,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		fallback: cfg.Fallback,
		log:      log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate builds the instructional prompt, calls the model, and runs the
// best-effort cleanup pipeline over the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		if c.fallback {
			c.log.Warn().Msg("no API key configured, serving fallback component")
			return fallbackComponent(prompt), nil
		}
		return "", domain.ErrGeneratorNotConfigured
	}

	var reply chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemMessage},
				{Role: "user", Content: buildPrompt(prompt)},
			},
			MaxTokens:   maxTokens,
			Temperature: temperature,
			TopP:        topP,
		}).
		SetResult(&reply).
		Post("/chat/completions")
	if err != nil {
		if c.fallback {
			c.log.Warn().Err(err).Msg("model call failed, serving fallback component")
			return fallbackComponent(prompt), nil
		}
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if err := mapStatus(resp.StatusCode()); err != nil {
		if c.fallback {
			c.log.Warn().Int("status", resp.StatusCode()).Msg("model rejected call, serving fallback component")
			return fallbackComponent(prompt), nil
		}
		return "", err
	}

	if len(reply.Choices) == 0 || reply.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no response received from model", domain.ErrGenerationFailed)
	}

	code := codefmt.StripFences(reply.Choices[0].Message.Content)
	code = codefmt.EnsureReactImports(code)
	code = codefmt.Cleanup(code)
	code = codefmt.Format(code)

	warnings, err := codefmt.Validate(code)
	if err != nil {
		return "", fmt.Errorf("%w: generated code validation failed: %v", domain.ErrGenerationFailed, err)
	}
	for _, w := range warnings {
		c.log.Warn().Str("warning", w).Msg("generated code validation warning")
	}

	return code, nil
}

func mapStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrGeneratorNotConfigured
	case status == http.StatusTooManyRequests:
		return domain.ErrGeneratorRateLimited
	case status >= 400:
		return fmt.Errorf("%w: model returned status %d", domain.ErrGenerationFailed, status)
	default:
		return nil
	}
}

// buildPrompt wraps the user description in the fixed instructional
// template the model is tuned against.
func buildPrompt(description string) string {
	return fmt.Sprintf(`You are an expert React developer. Generate a complete, functional React application based on the following description:

%q

Requirements:
1. Generate a complete React component that can be run immediately
2. Use modern React with TypeScript and functional components with hooks
3. Include proper TypeScript interfaces and types
4. Use Tailwind CSS for styling with responsive design
5. Include proper error handling and loading states where appropriate
6. Follow React best practices and clean code principles
7. Include proper accessibility attributes
8. Make the component interactive and functional
9. Use modern ES6+ syntax

Generate ONLY the React component code. Do not include explanations, markdown formatting, or additional text. Start directly with the import statements and end with the export statement.

Generate the complete React component now:`, description)
}

// fallbackComponent is a hardcoded component used only when Fallback is
// enabled and the upstream call cannot succeed.
func fallbackComponent(prompt string) string {
	return fmt.Sprintf(`import React, { useState } from 'react';

export default function GeneratedApp() {
  const [message, setMessage] = useState('Hello from your generated app!');

  return (
    <div className="min-h-screen bg-gradient-to-br from-blue-50 to-indigo-100 p-8">
      <div className="max-w-4xl mx-auto bg-white rounded-lg shadow-lg p-8">
        <h1 className="text-3xl font-bold text-gray-900 mb-6">Generated Application</h1>
        <p className="text-gray-600 mb-4">Based on your prompt: %q</p>
        <p className="text-blue-800 mb-6">{message}</p>
        <button
          onClick={() => setMessage('Button clicked! The app is working.')}
          className="bg-blue-600 hover:bg-blue-700 text-white font-medium py-2 px-4 rounded-lg"
        >
          Test Interaction
        </button>
      </div>
    </div>
  );
}
`, prompt)
}
