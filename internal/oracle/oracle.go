// internal/oracle/oracle.go

// Package oracle talks to the unreliable remote text services used for
// classification, extraction and rephrasing. Every call is bounded by a
// timeout and any failure is reported as an error the caller treats as
// "no answer".
package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory-assistant/internal/common/config"
	apperrors "inventory-assistant/internal/common/errors"
	"inventory-assistant/internal/common/logger"
)

// Request is one text-in/text-out call.
type Request struct {
	System      string
	Prompt      string
	JSON        bool // ask for a JSON object answer
	MaxTokens   int
	Temperature float64
}

// Completer is implemented by every provider.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds the configured provider wrapped in a timeout bound.
func New(cfg config.OracleConfig, log logger.Logger) (Completer, error) {
	timeout := config.GetDuration(cfg.Timeout)

	var (
		c   Completer
		err error
	)
	switch cfg.Provider {
	case "genai":
		c = NewGenAI(cfg.BaseURL, cfg.APIKey, timeout)
	case "ollama":
		c, err = NewOllama(cfg.BaseURL, cfg.Model, timeout)
	case "openai":
		c = NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case "none", "":
		c = Disabled{}
	default:
		return nil, apperrors.NewConfigInvalidError(fmt.Sprintf("unknown oracle provider %q", cfg.Provider))
	}
	if err != nil {
		return nil, err
	}

	return Bound(c, cfg.Provider, timeout, cfg.MaxTokens, cfg.Temperature, log), nil
}

// Disabled never answers.
type Disabled struct{}

func (Disabled) Complete(context.Context, Request) (string, error) {
	return "", fmt.Errorf("oracle disabled")
}

type bounded struct {
	next        Completer
	name        string
	timeout     time.Duration
	maxTokens   int
	temperature float64
	log         logger.Logger
}

// Bound applies the per call timeout and request defaults, trims the answer
// and turns every failure, including an empty answer, into a StandardError.
func Bound(next Completer, name string, timeout time.Duration, maxTokens int, temperature float64, log logger.Logger) Completer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &bounded{
		next:        next,
		name:        name,
		timeout:     timeout,
		maxTokens:   maxTokens,
		temperature: temperature,
		log:         log.With(map[string]interface{}{"oracle": name}),
	}
}

func (b *bounded) Complete(ctx context.Context, req Request) (string, error) {
	if req.MaxTokens == 0 {
		req.MaxTokens = b.maxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = b.temperature
	}
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := b.next.Complete(ctx, req)
	if err != nil {
		b.log.Debug("oracle call failed", map[string]interface{}{
			"error":    err.Error(),
			"duration": time.Since(start).String(),
		})
		return "", apperrors.NewOracleUnavailableError(b.name, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.NewOracleMalformedError(b.name, "empty answer")
	}
	return text, nil
}

// JSONObject cuts the outermost {...} out of an answer, dropping the code
// fences and chatter models like to add around it.
func JSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
