// internal/oracle/genai.go
package oracle

import (
	"context"
	"strings"
	"time"

	commonhttp "inventory-assistant/internal/common/http"
)

// GenAI calls the in-house generation endpoint (POST {base}/api/ai/generate).
type GenAI struct {
	baseURL string
	apiKey  string
	client  *commonhttp.Client
}

type generateRequest struct {
	Prompt      string  `json:"prompt"`
	System      string  `json:"system,omitempty"`
	Format      string  `json:"format,omitempty"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

func NewGenAI(baseURL, apiKey string, timeout time.Duration) *GenAI {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GenAI{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  commonhttp.NewClient(timeout),
	}
}

func (g *GenAI) Complete(ctx context.Context, req Request) (string, error) {
	body := generateRequest{
		Prompt:      req.Prompt,
		System:      req.System,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSON {
		body.Format = "json"
	}

	var headers map[string]string
	if g.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + g.apiKey}
	}

	var out generateResponse
	if err := g.client.PostJSON(ctx, g.baseURL+"/api/ai/generate", headers, body, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}
