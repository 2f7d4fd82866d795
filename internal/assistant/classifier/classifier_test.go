// internal/assistant/classifier/classifier_test.go
package classifier

import (
	"context"
	"errors"
	"testing"

	"inventory-assistant/internal/assistant/normalizer"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/oracle"

	"github.com/stretchr/testify/assert"
)

// fakeOracle answers from a lookup table keyed by prompt.
type fakeOracle struct {
	answers map[string]string
	err     error
	calls   int
}

func (f *fakeOracle) Complete(_ context.Context, req oracle.Request) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answers[req.Prompt], nil
}

var representativePhrases = []struct {
	lang   string
	text   string
	intent models.Intent
}{
	{"en-US", "rice stock", models.IntentStockQuery},
	{"en-US", "How much sugar is left?", models.IntentStockQuery},
	{"en-US", "low stock items", models.IntentLowStock},
	{"en-US", "show dead stock", models.IntentDeadStock},
	{"en-US", "which products are overstocked", models.IntentOverstockedProducts},
	{"en-US", "products expiring in 7 days", models.IntentExpiringProducts},
	{"en-US", "inventory summary", models.IntentInventorySummary},
	{"en-US", "what is the price of dal", models.IntentProductPricing},
	{"en-US", "how much does sugar cost", models.IntentProductPricing},
	{"en-US", "how much stock of costly rice", models.IntentStockQuery},
	{"en-US", "products supplied by ram traders", models.IntentSupplierProducts},
	{"en-US", "products in category grains", models.IntentCategoryProducts},
	{"en-US", "tell me about basmati rice", models.IntentProductDetails},
	{"en-US", "order 10 kg rice from ram traders", models.IntentSupplierDemand},
	{"en-US", "which is the best selling product", models.IntentOpinion},
	{"en-US", "hello", models.IntentGreeting},
	{"en-US", "help", models.IntentHelp},
	{"hi-IN", "चावल का स्टॉक कितना है?", models.IntentStockQuery},
	{"hi-IN", "कम स्टॉक वाली चीजें", models.IntentLowStock},
	{"hi-IN", "नहीं बिकने वाले उत्पाद", models.IntentDeadStock},
	{"hi-IN", "राम ट्रेडर्स से 10 किलो चावल मंगवाओ", models.IntentSupplierDemand},
	{"hi-IN", "चीनी की कीमत क्या है", models.IntentProductPricing},
	{"hi-IN", "चावल का दाम बताओ", models.IntentProductPricing},
	{"hi-IN", "बादाम का स्टॉक कितना है", models.IntentStockQuery},
	{"hi-IN", "नमस्ते", models.IntentGreeting},
	{"hi-IN", "मदद करो", models.IntentHelp},
	{"mr-IN", "तांदळाचा साठा किती आहे?", models.IntentStockQuery},
	{"mr-IN", "कमी स्टॉक वस्तू", models.IntentLowStock},
	{"mr-IN", "कालबाह्य होणारी उत्पादने", models.IntentExpiringProducts},
	{"mr-IN", "मदत हवी आहे", models.IntentHelp},
	{"ta-IN", "அரிசி ஸ்டாக் எவ்வளவு?", models.IntentStockQuery},
	{"ta-IN", "குறைந்த ஸ்டாக் பொருட்கள்", models.IntentLowStock},
	{"ta-IN", "சர்க்கரை விலை என்ன", models.IntentProductPricing},
	{"ta-IN", "வணக்கம்", models.IntentGreeting},
	{"te-IN", "బియ్యం స్టాక్ ఎంత?", models.IntentStockQuery},
	{"te-IN", "తక్కువ స్టాక్ వస్తువులు", models.IntentLowStock},
	{"te-IN", "డెడ్ స్టాక్ చూపించు", models.IntentDeadStock},
	{"te-IN", "సహాయం కావాలి", models.IntentHelp},
	{"te-IN", "నమస్కారం", models.IntentGreeting},
}

func TestFallback_RepresentativePhrases(t *testing.T) {
	for _, tt := range representativePhrases {
		t.Run(tt.lang+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.intent, Fallback(normalizer.Normalize(tt.text)))
		})
	}
}

func TestClassify_FallbackMatchesOracle(t *testing.T) {
	answers := make(map[string]string)
	for _, tt := range representativePhrases {
		answers[normalizer.Normalize(tt.text)] = tt.intent.String()
	}
	reachable := New(&fakeOracle{answers: answers}, logger.NewTestLogger(t))
	unreachable := New(&fakeOracle{err: errors.New("connection refused")}, logger.NewTestLogger(t))

	for _, tt := range representativePhrases {
		text := normalizer.Normalize(tt.text)
		withOracle := reachable.Classify(context.Background(), text)
		withoutOracle := unreachable.Classify(context.Background(), text)

		assert.Equal(t, tt.intent, withOracle, tt.text)
		assert.Equal(t, withOracle, withoutOracle, tt.text)
	}
}

func TestFallback_SpecificBeforeGeneral(t *testing.T) {
	assert.Equal(t, models.IntentLowStock, Fallback("low stock"))
	assert.Equal(t, models.IntentStockQuery, Fallback("stock"))
	assert.Equal(t, models.IntentDeadStock, Fallback("dead stock report"))
	assert.Equal(t, models.IntentSupplierDemand, Fallback("order rice from supplier ram"))
	assert.Equal(t, models.IntentSupplierProducts, Fallback("products from supplier ram"))
	assert.Equal(t, models.IntentHelp, Fallback("hi can you help"))
}

func TestFallback_WholeWordsForLatinScript(t *testing.T) {
	// "hi" must not fire inside "this" or "chips".
	assert.Equal(t, models.IntentUnknown, Fallback("this is chips"))
	assert.Equal(t, models.IntentExpiringProducts, Fallback("what expires soon"))
	assert.Equal(t, models.IntentUnknown, Fallback("weather today"))
	assert.Equal(t, models.IntentUnknown, Fallback(""))
}

func TestFallback_WordStartForOtherScripts(t *testing.T) {
	// "दाम" inside "बादाम" is not a pricing keyword.
	assert.Equal(t, models.IntentStockQuery, Fallback("बादाम स्टॉक"))
	assert.Equal(t, models.IntentUnknown, Fallback("बादाम"))
	// inflected keywords still match from the start of the word
	assert.Equal(t, models.IntentProductPricing, Fallback("दामों में बदलाव"))
	assert.Equal(t, models.IntentStockQuery, Fallback("स्टॉकमध्ये तांदूळ"))
}

func TestClassify_RejectsUnlistedOracleAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   models.Intent
	}{
		{"exact", "LOW_STOCK", models.IntentLowStock},
		{"quoted", `"LOW_STOCK".`, models.IntentLowStock},
		{"sentence", "The intent is LOW_STOCK", models.IntentStockQuery},
		{"not in set", "STOCK_ALERT", models.IntentStockQuery},
		{"empty", "", models.IntentStockQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &fakeOracle{answers: map[string]string{"rice stock": tt.answer}}
			c := New(o, nil)
			assert.Equal(t, tt.want, c.Classify(context.Background(), "rice stock"))
			assert.Equal(t, 1, o.calls)
		})
	}
}

func TestClassify_NilOracle(t *testing.T) {
	c := New(nil, nil)
	assert.Equal(t, models.IntentGreeting, c.Classify(context.Background(), "namaste"))
	assert.Equal(t, models.IntentUnknown, c.Classify(context.Background(), ""))
}
