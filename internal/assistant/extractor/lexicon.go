// internal/assistant/extractor/lexicon.go
package extractor

// The tables below are fixed and versioned with the code so that fallback
// extraction stays deterministic. Product aliases can be extended at startup
// with WithAliases.

// LexiconVersion identifies the revision of the tables in this file.
const LexiconVersion = "2026.10"

// defaultAliases maps localized product words onto the names used in the
// store of record. Non-Latin keys also match as word prefixes, so inflected
// forms such as "तांदळाचा" or "அரிசியை" resolve.
var defaultAliases = map[string]string{
	"चावल": "rice", "चावलों": "rice", "तांदूळ": "rice", "तांदळ": "rice", "अरिसी": "rice",
	"அரிசி": "rice", "బియ్యం": "rice",
	"गेहूं": "wheat", "गेहूँ": "wheat", "गहू": "wheat", "கோதுமை": "wheat", "గోధుమ": "wheat",
	"दाल": "dal", "डाळ": "dal", "பருப்பு": "dal", "పప్పు": "dal",
	"चीनी": "sugar", "शक्कर": "sugar", "साखर": "sugar", "சர்க்கரை": "sugar", "చక్కెర": "sugar",
	"तेल": "oil", "எண்ணெய்": "oil", "నూనె": "oil",
	"नमक": "salt", "मीठ": "salt", "உப்பு": "salt", "ఉప్పు": "salt",
	"आटा": "flour", "पीठ": "flour", "மாவு": "flour", "పిండి": "flour",
	"दूध": "milk", "பால்": "milk", "పాలు": "milk",
	"चाय": "tea", "चहा": "tea", "தேநீர்": "tea", "టీ": "tea",
}

// units maps quantity unit words onto a canonical spelling.
var units = map[string]string{
	"kg": "kg", "kgs": "kg", "kilo": "kg", "kilos": "kg", "kilogram": "kg", "kilograms": "kg",
	"किलो": "kg", "किग्रा": "kg", "கிலோ": "kg", "కిలో": "kg", "కిలోలు": "kg",
	"g": "g", "gm": "g", "gms": "g", "gram": "g", "grams": "g", "ग्राम": "g", "கிராம்": "g", "గ్రాములు": "g",
	"l": "l", "ltr": "l", "ltrs": "l", "litre": "l", "litres": "l", "liter": "l", "liters": "l",
	"लीटर": "l", "लिटर": "l", "லிட்டர்": "l", "లీటర్": "l", "లీటర్లు": "l",
	"ml": "ml",
	"pcs": "pcs", "pc": "pcs", "piece": "pcs", "pieces": "pcs", "units": "pcs", "unit": "pcs", "नग": "pcs",
	"packet": "packets", "packets": "packets", "pack": "packets", "packs": "packets", "पैकेट": "packets",
	"bag": "bags", "bags": "bags", "बोरी": "bags", "sack": "bags", "sacks": "bags",
	"box": "boxes", "boxes": "boxes", "डिब्बे": "boxes",
	"dozen": "dozen", "दर्जन": "dozen",
}

// dayUnits converts a look-ahead span into days.
var dayUnits = map[string]int{
	"day": 1, "days": 1, "दिन": 1, "दिवस": 1, "நாள்": 1, "நாட்கள்": 1, "రోజు": 1, "రోజులు": 1,
	"week": 7, "weeks": 7, "हफ्ते": 7, "हफ्ता": 7, "सप्ताह": 7, "आठवडा": 7, "வாரம்": 7, "వారం": 7,
	"month": 30, "months": 30, "महीना": 30, "महीने": 30, "महिना": 30, "மாதம்": 30, "నెల": 30,
}

// stopwords are removed before a free-text slot is read from what remains:
// question words, action verbs, intent keywords and grammatical particles.
var stopwords = toSet(
	// English
	"a", "an", "the", "of", "for", "to", "in", "on", "at", "by", "from", "with", "and", "or", "is", "are",
	"am", "be", "was", "do", "does", "did", "can", "could", "would", "will", "shall", "should", "you", "your",
	"me", "my", "i", "we", "our", "us", "it", "its", "this", "that", "these", "those", "there", "here",
	"what", "whats", "which", "who", "how", "much", "many", "when", "where", "why", "please", "pls", "kindly",
	"show", "list", "tell", "give", "get", "check", "find", "see", "know", "want", "need", "about", "all",
	"any", "some", "left", "available", "remaining", "have", "has", "got", "now", "today", "current", "currently",
	"stock", "stocks", "inventory", "level", "levels", "quantity", "qty", "amount", "count",
	"price", "prices", "pricing", "cost", "costs", "rate", "rates", "margin", "profit", "selling", "purchase",
	"details", "detail", "info", "information", "describe", "description", "sku", "barcode",
	"product", "products", "item", "items", "goods", "things",
	"category", "categories", "type", "kind",
	"order", "orders", "buy", "send", "demand", "request", "place", "purchase", "procure", "restock", "supply",
	"supplier", "suppliers", "vendor", "vendors", "supplied", "asap", "urgently", "immediately", "quickly",
	// Hindi
	"का", "की", "के", "को", "से", "में", "पर", "है", "हैं", "था", "क्या", "कितना", "कितनी", "कितने", "कैसे",
	"मुझे", "हमें", "मेरे", "दो", "दें", "दीजिए", "बताओ", "बताइए", "बताएं", "दिखाओ", "चाहिए", "कृपया", "और",
	"स्टॉक", "माल", "उपलब्ध", "बचा", "बची", "बचे", "कीमत", "दाम", "भाव", "जानकारी", "विवरण", "बारे",
	"उत्पाद", "सामान", "चीजें", "चीज़ें", "श्रेणी", "कैटेगरी", "वाले", "वाली",
	"मंगवाओ", "मँगवाओ", "मंगवा", "मंगाओ", "ऑर्डर", "आर्डर", "भेजो", "भेजें", "करो", "करें", "मांग",
	"सप्लायर", "आपूर्तिकर्ता", "विक्रेता",
	// Marathi
	"आहे", "आहेत", "किती", "काय", "ची", "चा", "चे", "ला", "ना", "कडून", "कडे", "मध्ये", "साठा", "शिल्लक",
	"किंमत", "दर", "माहिती", "तपशील", "वस्तू", "उत्पादने", "मागवा", "पाठवा", "हवा", "हवी", "हवे", "पाहिजे",
	"पुरवठादार", "सांगा", "दाखवा",
	// Tamil
	"ஸ்டாக்", "எவ்வளவு", "என்ன", "இருப்பு", "விலை", "விவரம்", "விவரங்கள்", "தகவல்", "பொருட்கள்", "பொருள்",
	"ஆர்டர்", "அனுப்பு", "அனுப்பவும்", "வேண்டும்", "இடமிருந்து", "இடம்", "சப்ளையர்", "காட்டு", "சொல்லு", "உள்ளது",
	// Telugu
	"స్టాక్", "ఎంత", "ఏమిటి", "నిల్వ", "ధర", "వివరాలు", "సమాచారం", "వస్తువులు", "ఉత్పత్తులు",
	"ఆర్డర్", "పంపు", "పంపండి", "కావాలి", "నుండి", "దగ్గర", "సప్లయర్", "సరఫరాదారు", "చూపించు", "చెప్పు", "ఉంది",
)

type markerDirection int

const (
	// after: the name follows the marker ("from Ram Traders").
	after markerDirection = iota
	// before: the name precedes a postposition ("राम ट्रेडर्स से").
	before
)

type marker struct {
	words []string
	dir   markerDirection
}

// supplierMarkers are tried in this order; the first one that yields an
// isolated name wins.
var supplierMarkers = []marker{
	{[]string{"from", "supplier"}, after},
	{[]string{"from", "vendor"}, after},
	{[]string{"from", "the", "supplier"}, after},
	{[]string{"supplied", "by"}, after},
	{[]string{"supplier"}, after},
	{[]string{"vendor"}, after},
	{[]string{"from"}, after},
	{[]string{"order", "to"}, after},
	{[]string{"send", "to"}, after},
	{[]string{"से"}, before},
	{[]string{"को"}, before},
	{[]string{"कडून"}, before},
	{[]string{"कडे"}, before},
	{[]string{"இடமிருந்து"}, before},
	{[]string{"இடம்"}, before},
	{[]string{"నుండి"}, before},
	{[]string{"దగ్గర"}, before},
	{[]string{"सप्लायर"}, after},
	{[]string{"आपूर्तिकर्ता"}, after},
	{[]string{"पुरवठादार"}, after},
	{[]string{"சப்ளையர்"}, after},
	{[]string{"సప్లయర్"}, after},
}

// nameBoundaries end a supplier name that follows its marker, in addition to
// punctuation and numbers. A name that precedes a postposition also stops at
// units, stopwords and known product words.
var nameBoundaries = toSet(
	"for", "to", "of", "with", "and", "please", "asap", "today", "tomorrow", "urgently", "by",
	"से", "को", "कडून", "कडे", "இடமிருந்து", "இடம்", "నుండి", "దగ్గర",
)

// maxNameTokens bounds a supplier span that runs to the edge of the text.
// A longer run is not considered isolated.
const maxNameTokens = 4

func toSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}
