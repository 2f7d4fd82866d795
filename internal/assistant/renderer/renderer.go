// internal/assistant/renderer/renderer.go

// Package renderer turns a Truth into a reply in the requested language and
// optionally lets the oracle rephrase it.
package renderer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/oracle"
)

const polishSystem = `You are an inventory management assistant. Make this response sound natural and conversational while keeping the exact same meaning and language.

CRITICAL RULES:
- NEVER change the language from %[1]s
- NEVER add phrases like "Based on the available information" or "I can provide details"
- NEVER add policy disclaimers or robotic language
- Keep the response short (1-2 sentences maximum)
- Make it sound natural and friendly but professional
- Do NOT add cooking advice, usage suggestions, or lifestyle tips
- ONLY rephrase the inventory information provided
- Do NOT invent or add any data not in the original
- Keep every number exactly as written`

type Renderer struct {
	catalog *Catalog
	oracle  oracle.Completer
	log     logger.Logger
}

// New returns a renderer; a nil oracle disables polishing.
func New(catalog *Catalog, o oracle.Completer, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Renderer{
		catalog: catalog,
		oracle:  o,
		log:     log.With(map[string]interface{}{"stage": "render"}),
	}
}

func (r *Renderer) Catalog() *Catalog {
	return r.catalog
}

// Render never returns an empty string. The base response is returned
// whenever the polished text fails acceptance.
func (r *Renderer) Render(ctx context.Context, truth models.Truth, lang string) string {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("render").Observe(time.Since(start).Seconds())
	}()

	profile := r.catalog.Lookup(lang)
	base := Base(profile, truth)
	if r.oracle == nil {
		return base
	}

	polished, outcome := r.polish(ctx, profile, base)
	metrics.PolishOutcomes.WithLabelValues(outcome).Inc()
	logger.FromContext(ctx, r.log).Debug("polish finished", map[string]interface{}{
		"language": profile.Code,
		"outcome":  outcome,
	})
	if outcome != outcomeAccepted {
		return base
	}
	return polished
}

// Message returns a fixed localized reply. These are never polished.
func (r *Renderer) Message(lang string, kind MessageKind) string {
	profile := r.catalog.Lookup(lang)
	if msg := profile.Messages[kind]; msg != "" {
		return msg
	}
	return profile.Messages[MessageFailure]
}

// Base applies the profile template for truth without any remote call.
func Base(profile LanguageProfile, truth models.Truth) string {
	if truth == nil {
		truth = models.StaticTruth{Kind: models.IntentUnknown}
	}
	tmpl, ok := profile.Templates[truth.Intent()]
	if !ok {
		tmpl = profile.Templates[models.IntentUnknown]
	}
	if out := strings.TrimSpace(tmpl(truth)); out != "" {
		return out
	}
	return profile.Messages[MessageFailure]
}

func (r *Renderer) polish(ctx context.Context, profile LanguageProfile, base string) (string, string) {
	answer, err := r.oracle.Complete(ctx, oracle.Request{
		System:      fmt.Sprintf(polishSystem, profile.Name),
		Prompt:      fmt.Sprintf("Base response to rephrase: %q\n\nNatural response in %s:", base, profile.Name),
		MaxTokens:   160,
		Temperature: 0.3,
	})
	if err != nil {
		logger.FromContext(ctx, r.log).Warn("polish failed", map[string]interface{}{"error": err.Error()})
		return "", outcomeError
	}
	polished := cleanPolished(answer)
	return polished, accept(profile, base, polished)
}
