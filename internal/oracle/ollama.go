// internal/oracle/ollama.go
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultOllamaURL = "http://localhost:11434"

// Ollama calls a local model through the Ollama generate API.
type Ollama struct {
	client *api.Client
	model  string
}

func NewOllama(baseURL, model string, timeout time.Duration) (*Ollama, error) {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ollama url: %w", err)
	}
	if model == "" {
		model = "mistral"
	}
	return &Ollama{
		client: api.NewClient(u, &http.Client{Timeout: timeout}),
		model:  model,
	}, nil
}

func (o *Ollama) Complete(ctx context.Context, req Request) (string, error) {
	stream := false
	gen := &api.GenerateRequest{
		Model:  o.model,
		System: req.System,
		Prompt: req.Prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
		},
	}
	if req.MaxTokens > 0 {
		gen.Options["num_predict"] = req.MaxTokens
	}
	if req.JSON {
		gen.Format = json.RawMessage(`"json"`)
	}

	var b strings.Builder
	err := o.client.Generate(ctx, gen, func(resp api.GenerateResponse) error {
		b.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
