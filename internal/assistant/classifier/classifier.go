// internal/assistant/classifier/classifier.go

// Package classifier maps normalized text onto the closed intent set.
package classifier

import (
	"context"
	"strings"
	"time"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/oracle"
)

const stage = "classify"

const systemPrompt = `You are an intent classifier for an inventory management assistant.
Users write in English, Hindi, Marathi, Tamil or Telugu.

Classify the message into EXACTLY ONE of these intents:
STOCK_QUERY - stock level of one product
LOW_STOCK - products at or below their minimum level
DEAD_STOCK - products with no sales or movement recently
PRODUCT_DETAILS - description, SKU, barcode, category or supplier of a product
CATEGORY_PRODUCTS - products in a category
SUPPLIER_PRODUCTS - products supplied by a supplier
EXPIRING_PRODUCTS - products close to expiry
OVERSTOCKED_PRODUCTS - products above their maximum level
PRODUCT_PRICING - purchase price, selling price or margin of a product
INVENTORY_SUMMARY - totals and value of the whole inventory
SUPPLIER_DEMAND - place an order or demand with a supplier
OPINION - best or top selling product
GREETING - hello, namaste
HELP - what the assistant can do
UNKNOWN - anything else

Examples:
"how much rice is left" -> STOCK_QUERY
"चावल का स्टॉक कितना है?" -> STOCK_QUERY
"तांदळाचा साठा किती आहे?" -> STOCK_QUERY
"அரிசி ஸ்டாக் எவ்வளவு?" -> STOCK_QUERY
"బియ్యం స్టాక్ ఎంత?" -> STOCK_QUERY
"low stock items" -> LOW_STOCK
"कम स्टॉक वाली चीजें" -> LOW_STOCK
"कमी स्टॉक वस्तू" -> LOW_STOCK
"नहीं बिकने वाले उत्पाद" -> DEAD_STOCK
"which products expire this week" -> EXPIRING_PRODUCTS
"order 10 kg rice from Ram Traders" -> SUPPLIER_DEMAND
"राम ट्रेडर्स से 10 किलो चावल मंगवाओ" -> SUPPLIER_DEMAND
"what is the price of sugar" -> PRODUCT_PRICING
"which product sells best" -> OPINION
"नमस्ते" -> GREETING
"मदद करो" -> HELP

Reply with the intent name only. No punctuation, no explanation.`

// Classifier asks the oracle first and falls back to the pattern table.
type Classifier struct {
	oracle oracle.Completer
	log    logger.Logger
}

// New returns a classifier; a nil completer means fallback only.
func New(o oracle.Completer, log logger.Logger) *Classifier {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Classifier{oracle: o, log: log.With(map[string]interface{}{"stage": stage})}
}

// Classify is total: it always returns a member of the intent set.
func (c *Classifier) Classify(ctx context.Context, text string) models.Intent {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}()
	log := logger.FromContext(ctx, c.log)

	if text == "" {
		return models.IntentUnknown
	}

	if c.oracle != nil {
		answer, err := c.oracle.Complete(ctx, oracle.Request{
			System:      systemPrompt,
			Prompt:      text,
			MaxTokens:   10,
			Temperature: 0,
		})
		if err == nil {
			if intent, ok := parseAnswer(answer); ok {
				metrics.StageResolutions.WithLabelValues(stage, metrics.SourceOracle).Inc()
				log.Debug("intent classified", map[string]interface{}{
					"intent": intent.String(),
					"source": metrics.SourceOracle,
				})
				return intent
			}
			log.Debug("oracle answer rejected", map[string]interface{}{"answer": answer})
		} else {
			log.Warn("oracle classification failed", map[string]interface{}{"error": err.Error()})
		}
	}

	intent := Fallback(text)
	metrics.StageResolutions.WithLabelValues(stage, metrics.SourceFallback).Inc()
	log.Debug("intent classified", map[string]interface{}{
		"intent": intent.String(),
		"source": metrics.SourceFallback,
	})
	return intent
}

// parseAnswer accepts a single token naming an intent. Quotes and trailing
// punctuation are tolerated, anything longer is not.
func parseAnswer(answer string) (models.Intent, bool) {
	token := strings.Trim(strings.TrimSpace(answer), "\"'`.:")
	if token == "" || strings.ContainsAny(token, " \t\n") {
		return models.IntentUnknown, false
	}
	return models.ParseIntent(token)
}
