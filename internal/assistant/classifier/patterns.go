// internal/assistant/classifier/patterns.go
package classifier

import (
	"strings"
	"unicode"

	"inventory-assistant/internal/models"
)

// Pattern is the keyword set of one intent. Latin-script phrases must match
// whole words; a trailing '*' makes the last word a prefix. Phrases in other
// scripts must start a word but may run into a suffix, since inflection is
// agglutinative there ("तांदळाचा" carries "तांदळ", "बादाम" does not carry "दाम").
type Pattern struct {
	Intent  models.Intent
	Phrases []string
}

// patterns is evaluated top to bottom, first hit wins. Specific intents sit
// above the general ones whose keywords they contain: low/dead/over stock
// before stock, demand before supplier listing, help before greeting.
var patterns = []Pattern{
	{models.IntentSupplierDemand, []string{
		"place an order", "place order", "send order", "send an order", "order", "demand",
		"request from", "request supplier", "buy from", "purchase from", "restock from",
		"मंगवाओ", "मंगवा दो", "मँगवाओ", "ऑर्डर", "आर्डर", "मांग भेजो",
		"मागवा", "मागणी पाठवा",
		"ஆர்டர்", "வரவழை",
		"ఆర్డర్", "తెప్పించు",
	}},
	{models.IntentLowStock, []string{
		"low stock", "running low", "low inventory", "stock low", "short on", "shortage", "below minimum", "reorder level",
		"कम स्टॉक", "स्टॉक कम", "कम माल", "खत्म होने",
		"कमी स्टॉक", "स्टॉक कमी", "कमी साठा", "साठा कमी",
		"குறைந்த ஸ்டாக்", "ஸ்டாக் குறைவு", "குறைவான",
		"తక్కువ స్టాక్", "స్టాక్ తక్కువ", "తక్కువగా",
	}},
	{models.IntentDeadStock, []string{
		"dead stock", "unsold", "not sold", "not selling", "no sales", "slow moving", "non moving",
		"डेड स्टॉक", "नहीं बिक", "नहीं बिकने", "बिना बिके",
		"विकले गेले नाही", "न विकलेल", "विक्री नाही",
		"டெட் ஸ்டாக்", "விற்கப்படாத", "விற்காத",
		"డెడ్ స్టాక్", "అమ్ముడుపోని", "అమ్మకం లేని",
	}},
	{models.IntentOverstockedProducts, []string{
		"overstock*", "over stock*", "excess stock", "too much stock", "above maximum", "surplus",
		"ज्यादा स्टॉक", "अधिक स्टॉक", "अतिरिक्त स्टॉक",
		"जास्त स्टॉक", "जास्त साठा",
		"அதிக ஸ்டாக்", "கூடுதல் ஸ்டாக்",
		"అధిక స్టాక్", "ఎక్కువ స్టాక్",
	}},
	{models.IntentExpiringProducts, []string{
		"expir*", "expiry", "shelf life", "going bad", "best before",
		"एक्सपायर", "समाप्त होने", "खराब होने", "मियाद",
		"कालबाह्य", "मुदत संपणार",
		"காலாவதி",
		"గడువు", "ఎక్స్‌పైర్",
	}},
	{models.IntentInventorySummary, []string{
		"summary", "inventory value", "stock value", "total inventory", "total stock", "overview", "inventory report",
		"सारांश", "कुल स्टॉक", "कुल माल", "कुल मूल्य",
		"एकूण साठा", "एकूण स्टॉक",
		"சுருக்கம்", "மொத்த ஸ்டாக்",
		"సారాంశం", "మొత్తం స్టాక్",
	}},
	{models.IntentProductPricing, []string{
		"price*", "pricing", "cost", "costs", "costing", "cost of", "margin", "profit on", "selling rate", "rate of",
		"कीमत", "दाम", "भाव", "मार्जिन",
		"किंमत", "दर काय",
		"விலை",
		"ధర",
	}},
	{models.IntentSupplierProducts, []string{
		"supplied by", "products from", "items from", "products by supplier", "supplier products", "from supplier", "from vendor",
		"सप्लायर के", "सप्लायर का", "आपूर्तिकर्ता",
		"पुरवठादार",
		"சப்ளையர்",
		"సరఫరాదారు", "సప్లయర్",
	}},
	{models.IntentCategoryProducts, []string{
		"category", "categories", "type of products", "kind of products",
		"श्रेणी", "कैटेगरी", "वर्ग",
		"प्रकार",
		"வகை",
		"వర్గం", "కేటగిరీ",
	}},
	{models.IntentProductDetails, []string{
		"details", "detail of", "info about", "information about", "tell me about", "describe", "sku", "barcode",
		"जानकारी", "विवरण", "बारे में",
		"माहिती", "तपशील",
		"விவரம்", "விவரங்கள்", "தகவல்",
		"వివరాలు", "సమాచారం",
	}},
	{models.IntentOpinion, []string{
		"best", "top selling", "best selling", "most sold", "bestseller", "recommend*", "popular", "fast moving",
		"सबसे अच्छा", "सबसे ज्यादा बिक", "सबसे अधिक बिक", "लोकप्रिय",
		"सर्वात चांगले", "सर्वाधिक विक",
		"சிறந்த", "அதிகம் விற்",
		"ఉత్తమ", "ఎక్కువగా అమ్ము",
	}},
	{models.IntentStockQuery, []string{
		"stock", "stocks", "how much", "how many", "quantity of", "available", "inventory of", "left",
		"स्टॉक", "कितना", "कितनी", "कितने", "उपलब्ध",
		"साठा", "किती", "शिल्लक",
		"ஸ்டாக்", "எவ்வளவு", "இருப்பு",
		"స్టాక్", "ఎంత", "నిల్వ",
	}},
	{models.IntentHelp, []string{
		"help", "what can you do", "how do i", "how to use", "commands", "features",
		"मदद", "सहायता",
		"मदत",
		"உதவி",
		"సహాయం", "సహాయము",
	}},
	{models.IntentGreeting, []string{
		"hello", "hi", "hey", "hii", "namaste", "namaskar", "good morning", "good evening", "good afternoon",
		"नमस्ते", "नमस्कार", "प्रणाम",
		"வணக்கம்",
		"నమస్కారం", "నమస్తే",
	}},
}

// Patterns returns the fallback table in evaluation order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Fallback classifies normalized text with the pattern table. It is total and
// never touches the network.
func Fallback(text string) models.Intent {
	if text == "" {
		return models.IntentUnknown
	}
	padded := " " + text + " "
	words := strings.Fields(text)

	for _, p := range patterns {
		for _, phrase := range p.Phrases {
			if matchPhrase(padded, words, phrase) {
				return p.Intent
			}
		}
	}
	return models.IntentUnknown
}

func matchPhrase(padded string, words []string, phrase string) bool {
	if !isLatin(phrase) {
		return strings.Contains(padded, " "+phrase)
	}
	if strings.HasSuffix(phrase, "*") {
		return matchPrefixPhrase(words, strings.Fields(strings.TrimSuffix(phrase, "*")))
	}
	return strings.Contains(padded, " "+phrase+" ")
}

// matchPrefixPhrase finds the phrase words in sequence, the last one as a prefix.
func matchPrefixPhrase(words, phrase []string) bool {
	n := len(phrase)
	if n == 0 {
		return false
	}
	for i := 0; i+n <= len(words); i++ {
		ok := true
		for j := 0; j < n-1; j++ {
			if words[i+j] != phrase[j] {
				ok = false
				break
			}
		}
		if ok && strings.HasPrefix(words[i+n-1], phrase[n-1]) {
			return true
		}
	}
	return false
}

func isLatin(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
