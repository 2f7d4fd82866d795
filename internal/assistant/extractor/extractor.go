// internal/assistant/extractor/extractor.go

// Package extractor pulls slot values out of user text.
package extractor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/common/validation"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/oracle"
)

const stage = "extract"

var productSchema = validation.MustCompile(`{
	"type": "object",
	"properties": {
		"product": {"type": ["string", "null"], "maxLength": 120}
	},
	"required": ["product"]
}`)

var demandSchema = validation.MustCompile(`{
	"type": "object",
	"properties": {
		"product":  {"type": ["string", "null"], "maxLength": 120},
		"quantity": {"type": ["number", "null"], "minimum": 0},
		"unit":     {"type": ["string", "null"], "maxLength": 20},
		"supplier": {"type": ["string", "null"], "maxLength": 120}
	},
	"required": ["product", "quantity", "supplier"]
}`)

const productPrompt = `Extract the product name from an inventory question written in English, Hindi, Marathi, Tamil or Telugu.
Translate common grocery words to English (चावल -> rice, तांदूळ -> rice, गेहूं -> wheat, दाल -> dal, चीनी -> sugar, तेल -> oil).
Respond with JSON only: {"product": "<name>"} or {"product": null} when no product is mentioned.`

const demandPrompt = `Extract an order request for a supplier from a message written in English, Hindi, Marathi, Tamil or Telugu.
Translate product words to English. Copy the supplier name exactly as written. Never guess a missing value.
Respond with JSON only: {"product": string|null, "quantity": number|null, "unit": string|null, "supplier": string|null}`

// Extractor asks the oracle for structured slots and falls back to the
// deterministic parser. Oracle values that are absent or ungrounded are
// filled from the fallback.
type Extractor struct {
	oracle  oracle.Completer
	lexicon *lexicon
	log     logger.Logger
}

type Option func(*Extractor)

// WithAliases extends the product alias table (localized word -> store name).
func WithAliases(aliases map[string]string) Option {
	return func(e *Extractor) {
		e.lexicon = newLexicon(aliases)
	}
}

func New(o oracle.Completer, log logger.Logger, opts ...Option) *Extractor {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	e := &Extractor{
		oracle:  o,
		lexicon: defaultLexicon,
		log:     log.With(map[string]interface{}{"stage": stage}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSlots fills the slots the intent needs. text is folded, not
// normalized: punctuation delimits supplier names.
func (e *Extractor) ExtractSlots(ctx context.Context, intent models.Intent, text string) models.SlotSet {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}()

	switch intent {
	case models.IntentStockQuery, models.IntentProductDetails, models.IntentProductPricing:
		return models.SlotSet{Product: e.ExtractProduct(ctx, text)}
	case models.IntentSupplierDemand:
		return e.ExtractDemandSlots(ctx, text)
	case models.IntentCategoryProducts:
		return models.SlotSet{Category: e.lexicon.product(tokenize(text), span{})}
	case models.IntentSupplierProducts:
		return models.SlotSet{Supplier: e.supplierName(tokenize(text))}
	case models.IntentExpiringProducts:
		return models.SlotSet{Days: days(tokenize(text))}
	}
	return models.SlotSet{}
}

func (e *Extractor) supplierName(toks []token) *string {
	if name, _, ok := e.lexicon.supplier(toks); ok {
		return models.StringPtr(name)
	}
	var words []token
	for _, t := range toks {
		if !e.lexicon.isFiller(t) {
			words = append(words, t)
		}
	}
	if len(words) == 0 || len(words) > maxNameTokens {
		return nil
	}
	return models.StringPtr(joinRaw(words))
}

// ExtractProduct returns the single product slot, or nil.
func (e *Extractor) ExtractProduct(ctx context.Context, text string) *string {
	log := logger.FromContext(ctx, e.log)
	fallback := e.lexicon.product(tokenize(text), span{})

	var out struct {
		Product *string `json:"product"`
	}
	if e.ask(ctx, productPrompt, text, productSchema, &out) {
		if p := strings.ToLower(strings.TrimSpace(models.Value(out.Product))); p != "" {
			metrics.StageResolutions.WithLabelValues(stage, metrics.SourceOracle).Inc()
			log.Debug("product extracted", map[string]interface{}{"product": p, "source": metrics.SourceOracle})
			return &p
		}
	}

	metrics.StageResolutions.WithLabelValues(stage, metrics.SourceFallback).Inc()
	log.Debug("product extracted", map[string]interface{}{
		"product": models.Value(fallback),
		"source":  metrics.SourceFallback,
	})
	return fallback
}

// ExtractDemandSlots returns product, quantity and supplier, each nullable.
func (e *Extractor) ExtractDemandSlots(ctx context.Context, text string) models.SlotSet {
	log := logger.FromContext(ctx, e.log)
	toks := tokenize(text)
	fallback := e.lexicon.demandSlots(toks)

	var out struct {
		Product  *string  `json:"product"`
		Quantity *float64 `json:"quantity"`
		Unit     *string  `json:"unit"`
		Supplier *string  `json:"supplier"`
	}
	if !e.ask(ctx, demandPrompt, text, demandSchema, &out) {
		metrics.StageResolutions.WithLabelValues(stage, metrics.SourceFallback).Inc()
		log.Debug("demand slots extracted", slotFields(fallback, metrics.SourceFallback))
		return fallback
	}

	var remote models.SlotSet
	lowerText := strings.ToLower(text)
	if p := strings.ToLower(strings.TrimSpace(models.Value(out.Product))); p != "" && e.grounded(toks, lowerText, p) {
		remote.Product = &p
	}
	if s := strings.TrimSpace(models.Value(out.Supplier)); s != "" && strings.Contains(lowerText, strings.ToLower(s)) {
		remote.Supplier = &s
	}
	if out.Quantity != nil && numberInText(toks, *out.Quantity) {
		q := models.Quantity{Amount: *out.Quantity}
		if u, ok := units[strings.ToLower(models.Value(out.Unit))]; ok {
			q.Unit = u
		}
		remote.Quantity = &q
	}

	slots := remote.Merge(fallback)
	metrics.StageResolutions.WithLabelValues(stage, metrics.SourceOracle).Inc()
	log.Debug("demand slots extracted", slotFields(slots, metrics.SourceOracle))
	return slots
}

// ask runs one structured oracle call and decodes a schema-valid answer.
func (e *Extractor) ask(ctx context.Context, system, text string, schema *validation.Schema, out interface{}) bool {
	if e.oracle == nil {
		return false
	}
	log := logger.FromContext(ctx, e.log)

	answer, err := e.oracle.Complete(ctx, oracle.Request{System: system, Prompt: text, JSON: true, Temperature: 0})
	if err != nil {
		log.Warn("oracle extraction failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	obj, ok := oracle.JSONObject(answer)
	if !ok {
		log.Debug("oracle answer is not json", map[string]interface{}{"answer": answer})
		return false
	}
	if err := schema.ValidateBytes([]byte(obj)); err != nil {
		log.Debug("oracle answer rejected", map[string]interface{}{"error": err.Error()})
		return false
	}
	if err := json.Unmarshal([]byte(obj), out); err != nil {
		return false
	}
	return true
}

// grounded accepts a product the text names directly or through an alias.
func (e *Extractor) grounded(toks []token, lowerText, product string) bool {
	if strings.Contains(lowerText, product) {
		return true
	}
	for _, t := range toks {
		if c, ok := e.lexicon.canonical(t.lower); ok && c == product {
			return true
		}
	}
	return false
}

func numberInText(toks []token, n float64) bool {
	for _, t := range toks {
		if v, ok := parseNumber(t.lower); ok && v == n {
			return true
		}
	}
	return false
}

func slotFields(s models.SlotSet, source string) map[string]interface{} {
	fields := map[string]interface{}{
		"product":  models.Value(s.Product),
		"supplier": models.Value(s.Supplier),
		"source":   source,
	}
	if s.Quantity != nil {
		fields["quantity"] = s.Quantity.String()
	}
	return fields
}
