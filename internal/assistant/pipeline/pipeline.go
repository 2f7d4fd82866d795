// internal/assistant/pipeline/pipeline.go

// Package pipeline wires the stages into the single inbound operation:
// normalize, classify, extract, validate, assemble and render.
package pipeline

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"inventory-assistant/internal/assistant/assembler"
	"inventory-assistant/internal/assistant/classifier"
	"inventory-assistant/internal/assistant/extractor"
	"inventory-assistant/internal/assistant/normalizer"
	"inventory-assistant/internal/assistant/renderer"
	"inventory-assistant/internal/assistant/validator"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/common/observability"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/notify"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Request is one inbound question. TenantID is passed through to data access
// untouched.
type Request struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
}

type Response struct {
	Reply string `json:"reply"`
}

// Notifier sends supplier demands. *notify.Dispatcher implements it.
type Notifier interface {
	ChannelFor(s models.Supplier) notify.Channel
	NotifySupplierDemand(ctx context.Context, channel notify.Channel, name, product, quantity string) notify.Result
}

// Stages are the per-request steps. All of them are safe for concurrent use.
type Stages struct {
	Classifier *classifier.Classifier
	Extractor  *extractor.Extractor
	Validator  *validator.Validator
	Assembler  *assembler.Assembler
	Renderer   *renderer.Renderer
}

type Pipeline struct {
	stages   Stages
	notifier Notifier
	obs      *observability.Observability
	log      logger.Logger
}

// New returns a pipeline. notifier and obs may be nil.
func New(stages Stages, notifier Notifier, obs *observability.Observability, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Pipeline{
		stages:   stages,
		notifier: notifier,
		obs:      obs,
		log:      log.With(map[string]interface{}{"component": "pipeline"}),
	}
}

// Renderer exposes the renderer for callers that need localized messages
// outside a request, such as malformed input at the transport layer.
func (p *Pipeline) Renderer() *renderer.Renderer {
	return p.stages.Renderer
}

// Handle always returns a non-empty reply in the resolved language. Each
// request is independent; a panic in any stage becomes the localized failure
// reply.
func (p *Pipeline) Handle(ctx context.Context, req Request) (resp Response) {
	start := time.Now()
	lang := p.stages.Renderer.Catalog().Lookup(req.Language).Code

	log := p.log.With(map[string]interface{}{
		"requestId": uuid.NewString(),
		"tenantId":  req.TenantID,
		"language":  lang,
	})
	ctx = logger.IntoContext(ctx, log)

	ctx, span := p.obs.Tracer().Start(ctx, "assistant.handle",
		trace.WithAttributes(attribute.String("language", lang)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			log.Error("request panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			})
			span.SetStatus(codes.Error, "panic")
			resp = Response{Reply: p.stages.Renderer.Message(lang, renderer.MessageFailure)}
		}
	}()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		log.Debug("empty message", nil)
		return Response{Reply: p.stages.Renderer.Message(lang, renderer.MessageEmptyInput)}
	}

	var intent models.Intent
	p.traced(ctx, "classify", func(ctx context.Context) {
		intent = p.stages.Classifier.Classify(ctx, normalizer.Normalize(message))
	})
	span.SetAttributes(attribute.String("intent", intent.String()))

	var slots models.SlotSet
	p.traced(ctx, "extract", func(ctx context.Context) {
		slots = p.stages.Extractor.ExtractSlots(ctx, intent, normalizer.Fold(message))
	})

	var truth models.Truth
	if validator.RequiresValidation(intent) {
		truth = p.demand(ctx, req.TenantID, intent, slots)
	} else {
		p.traced(ctx, "assemble", func(ctx context.Context) {
			truth = p.stages.Assembler.Assemble(ctx, req.TenantID, intent, slots)
		})
	}

	var reply string
	p.traced(ctx, "render", func(ctx context.Context) {
		reply = p.stages.Renderer.Render(ctx, truth, lang)
	})

	metrics.RequestsTotal.WithLabelValues(intent.String(), lang).Inc()
	p.obs.RecordRequest(ctx, intent.String(), lang, time.Since(start))
	log.Info("request handled", map[string]interface{}{
		"intent":     intent.String(),
		"durationMs": time.Since(start).Milliseconds(),
	})
	return Response{Reply: reply}
}

// demand gates the notification on a Ready decision. Nothing is sent for a
// missing field or an unknown supplier.
func (p *Pipeline) demand(ctx context.Context, tenantID string, intent models.Intent, slots models.SlotSet) models.Truth {
	var decision validator.Decision
	p.traced(ctx, "validate", func(ctx context.Context) {
		decision = p.stages.Validator.Validate(ctx, tenantID, intent, slots)
	})
	if !decision.Ready() {
		return p.stages.Assembler.Demand(decision, "", "")
	}
	if p.notifier == nil {
		return p.stages.Assembler.Demand(decision, models.DemandNotConfigured, "")
	}

	var res notify.Result
	p.traced(ctx, "notify", func(ctx context.Context) {
		channel := p.notifier.ChannelFor(*decision.Supplier)
		res = p.notifier.NotifySupplierDemand(ctx, channel,
			decision.Supplier.Name,
			models.Value(decision.Slots.Product),
			decision.Slots.Quantity.String(),
		)
	})

	outcome := models.DemandSent
	switch {
	case res.OK:
	case res.Reason == notify.ReasonNotConfigured:
		outcome = models.DemandNotConfigured
	default:
		outcome = models.DemandSendFailed
	}
	return p.stages.Assembler.Demand(decision, outcome, res.Channel)
}

func (p *Pipeline) traced(ctx context.Context, stage string, fn func(ctx context.Context)) {
	ctx, span := p.obs.Tracer().Start(ctx, "assistant."+stage)
	defer span.End()
	fn(ctx)
}
