// internal/assistant/renderer/languages.go
package renderer

import "unicode"

// DefaultProfiles returns the built-in languages.
func DefaultProfiles() []LanguageProfile {
	return []LanguageProfile{
		english.profile("en-US", "English", unicode.Latin),
		hindi.profile("hi-IN", "Hindi", unicode.Devanagari),
		marathi.profile("mr-IN", "Marathi", unicode.Devanagari),
		tamil.profile("ta-IN", "Tamil", unicode.Tamil),
		telugu.profile("te-IN", "Telugu", unicode.Telugu),
	}
}

var english = phrases{
	stop: ".",
	sep:  ", ",

	stockFound:    "%[1]s has %[2]s available.",
	stockNotFound: "%[1]s was not found in the inventory.",
	askProduct:    "Which product would you like me to check?",

	lowEmpty:      "No low stock items found.",
	lowList:       "These items are running low: %[1]s.",
	deadEmpty:     "No dead stock found.",
	deadList:      "These products have not sold in the last 30 days: %[1]s.",
	overEmpty:     "No overstocked products found.",
	overList:      "These products are above their maximum stock level: %[1]s.",
	expiringEmpty: "No products expire in the next %[1]s days.",
	expiringList:  "Products expiring in the next %[1]s days: %[2]s.",

	askCategory:   "Which category should I list?",
	categoryEmpty: "No products found in category %[1]s.",
	categoryList:  "Products in category %[1]s: %[2]s.",
	askSupplier:   "Which supplier's products should I list?",
	supplierEmpty: "No products found from supplier %[1]s.",
	supplierList:  "Products from %[1]s: %[2]s.",

	detailsNotFound: "I couldn't find details for %[1]s.",
	detailsFound:    "%[1]s: %[2]s in stock",
	detailsCategory: "category %[1]s",
	detailsSupplier: "supplier %[1]s",
	detailsPrice:    "selling price %[1]s",
	detailsExpiry:   "expires on %[1]s",

	pricingNotFound: "No price information found for %[1]s.",
	pricingFound:    "%[1]s is bought at %[2]s and sold at %[3]s",
	pricingMargin:   "a profit margin of %[1]s%%",

	summaryMissing: "The inventory summary is not available right now.",
	summary:        "You have %[1]s products with %[2]s units in stock, worth %[3]s at purchase price and %[4]s at selling price, a potential profit of %[5]s.",

	opinionNone: "No sales data available yet.",
	opinion:     "Based on sales data, %[1]s is currently the top seller with %[2]s sold.",

	greeting: "Hello! I can help you check inventory and stock levels.",
	help:     "You can ask about stock levels, low stock, dead stock, expiring or overstocked products, prices, categories, suppliers or an inventory summary, or ask me to order from a supplier.",
	unknown:  "I can help with inventory questions like stock levels or product availability.",

	demandSent:             "Your request for %[1]s of %[2]s has been sent to %[3]s by %[4]s.",
	demandAskSupplier:      "Which supplier should I send this order to?",
	demandAskProduct:       "Which product would you like to order?",
	demandAskQuantity:      "How much %[1]s should I order?",
	demandSupplierNotFound: "I couldn't find contact details for supplier %[1]s.",
	demandNotConfigured:    "Supplier notifications are not set up, so I couldn't contact %[1]s.",
	demandSendFailed:       "I couldn't reach %[1]s right now. Please try again later.",
	channelEmail:           "email",
	channelSMS:             "SMS",

	more: "and %[1]d more",

	emptyInput: "Please type a question about your inventory.",
	failure:    "Sorry, I couldn't process that request.",
}

var hindi = phrases{
	stop: "।",
	sep:  ", ",

	stockFound:    "%[1]s का स्टॉक %[2]s उपलब्ध है।",
	stockNotFound: "%[1]s इन्वेंटरी में नहीं मिला।",
	askProduct:    "आप किस उत्पाद की जानकारी चाहते हैं?",

	lowEmpty:      "कम स्टॉक वाली कोई वस्तु नहीं मिली।",
	lowList:       "इन वस्तुओं का स्टॉक कम है: %[1]s।",
	deadEmpty:     "कोई डेड स्टॉक नहीं मिला।",
	deadList:      "ये उत्पाद पिछले 30 दिनों में नहीं बिके: %[1]s।",
	overEmpty:     "ज़रूरत से ज़्यादा स्टॉक वाला कोई उत्पाद नहीं मिला।",
	overList:      "इन उत्पादों का स्टॉक अधिकतम सीमा से ज़्यादा है: %[1]s।",
	expiringEmpty: "अगले %[1]s दिनों में कोई उत्पाद एक्सपायर नहीं हो रहा।",
	expiringList:  "अगले %[1]s दिनों में एक्सपायर होने वाले उत्पाद: %[2]s।",

	askCategory:   "आप कौन सी श्रेणी देखना चाहते हैं?",
	categoryEmpty: "श्रेणी %[1]s में कोई उत्पाद नहीं मिला।",
	categoryList:  "श्रेणी %[1]s के उत्पाद: %[2]s।",
	askSupplier:   "किस सप्लायर के उत्पाद दिखाऊं?",
	supplierEmpty: "सप्लायर %[1]s का कोई उत्पाद नहीं मिला।",
	supplierList:  "%[1]s के उत्पाद: %[2]s।",

	detailsNotFound: "%[1]s की जानकारी नहीं मिली।",
	detailsFound:    "%[1]s: स्टॉक %[2]s",
	detailsCategory: "श्रेणी %[1]s",
	detailsSupplier: "सप्लायर %[1]s",
	detailsPrice:    "बिक्री मूल्य %[1]s",
	detailsExpiry:   "एक्सपायरी %[1]s",

	pricingNotFound: "%[1]s की कीमत की जानकारी नहीं मिली।",
	pricingFound:    "%[1]s की खरीद कीमत %[2]s और बिक्री कीमत %[3]s है",
	pricingMargin:   "मुनाफ़ा मार्जिन %[1]s%%",

	summaryMissing: "इन्वेंटरी सारांश अभी उपलब्ध नहीं है।",
	summary:        "आपके पास %[1]s उत्पाद हैं, कुल स्टॉक %[2]s यूनिट, खरीद मूल्य पर कीमत %[3]s और बिक्री मूल्य पर %[4]s, संभावित मुनाफ़ा %[5]s।",

	opinionNone: "अभी तक सेल्स डेटा उपलब्ध नहीं है।",
	opinion:     "सेल्स डेटा के अनुसार, %[1]s फिलहाल सबसे ज़्यादा बिकने वाला उत्पाद है, कुल बिक्री %[2]s।",

	greeting: "नमस्ते! मैं इन्वेंटरी और स्टॉक लेवल चेक करने में मदद कर सकता हूं।",
	help:     "आप स्टॉक लेवल, कम स्टॉक, डेड स्टॉक, एक्सपायर होने वाले उत्पाद, कीमत, श्रेणी, सप्लायर या इन्वेंटरी सारांश के बारे में पूछ सकते हैं, या सप्लायर को ऑर्डर भेजने को कह सकते हैं।",
	unknown:  "मैं इन्वेंटरी के सवालों में मदद कर सकता हूं जैसे स्टॉक लेवल या उत्पाद उपलब्धता।",

	demandSent:             "%[2]s (%[1]s) का अनुरोध %[3]s को %[4]s से भेज दिया गया है।",
	demandAskSupplier:      "यह ऑर्डर किस सप्लायर को भेजूं?",
	demandAskProduct:       "आप कौन सा उत्पाद मंगवाना चाहते हैं?",
	demandAskQuantity:      "%[1]s कितना मंगवाना है?",
	demandSupplierNotFound: "सप्लायर %[1]s की संपर्क जानकारी नहीं मिली।",
	demandNotConfigured:    "सप्लायर सूचना सेवा सेट नहीं है, इसलिए %[1]s से संपर्क नहीं हो सका।",
	demandSendFailed:       "अभी %[1]s तक अनुरोध नहीं पहुंच सका। कृपया बाद में फिर कोशिश करें।",
	channelEmail:           "ईमेल",
	channelSMS:             "एसएमएस",

	more: "और %[1]d अन्य",

	emptyInput: "कृपया अपनी इन्वेंटरी के बारे में सवाल लिखें।",
	failure:    "माफ करें, मैं उस अनुरोध को प्रोसेस नहीं कर पाया।",
}

var marathi = phrases{
	stop: "।",
	sep:  ", ",

	stockFound:    "%[1]s चा स्टॉक %[2]s उपलब्ध आहे।",
	stockNotFound: "%[1]s इन्व्हेंटरीमध्ये सापडले नाही।",
	askProduct:    "कोणत्या उत्पादनाची माहिती हवी आहे?",

	lowEmpty:      "कमी स्टॉक वस्तू सापडल्या नाहीत।",
	lowList:       "या वस्तूंचा स्टॉक कमी आहे: %[1]s।",
	deadEmpty:     "डेड स्टॉक सापडला नाही।",
	deadList:      "ही उत्पादने गेल्या 30 दिवसांत विकली गेली नाहीत: %[1]s।",
	overEmpty:     "जास्त स्टॉक असलेली उत्पादने सापडली नाहीत।",
	overList:      "या उत्पादनांचा स्टॉक कमाल मर्यादेपेक्षा जास्त आहे: %[1]s।",
	expiringEmpty: "पुढील %[1]s दिवसांत कोणतेही उत्पादन कालबाह्य होत नाही।",
	expiringList:  "पुढील %[1]s दिवसांत कालबाह्य होणारी उत्पादने: %[2]s।",

	askCategory:   "कोणती श्रेणी दाखवू?",
	categoryEmpty: "श्रेणी %[1]s मध्ये उत्पादने सापडली नाहीत।",
	categoryList:  "श्रेणी %[1]s मधील उत्पादने: %[2]s।",
	askSupplier:   "कोणत्या पुरवठादाराची उत्पादने दाखवू?",
	supplierEmpty: "पुरवठादार %[1]s ची उत्पादने सापडली नाहीत।",
	supplierList:  "%[1]s ची उत्पादने: %[2]s।",

	detailsNotFound: "%[1]s ची माहिती सापडली नाही।",
	detailsFound:    "%[1]s: स्टॉक %[2]s",
	detailsCategory: "श्रेणी %[1]s",
	detailsSupplier: "पुरवठादार %[1]s",
	detailsPrice:    "विक्री किंमत %[1]s",
	detailsExpiry:   "कालबाह्यता %[1]s",

	pricingNotFound: "%[1]s ची किंमत माहिती सापडली नाही।",
	pricingFound:    "%[1]s ची खरेदी किंमत %[2]s आणि विक्री किंमत %[3]s आहे",
	pricingMargin:   "नफा मार्जिन %[1]s%%",

	summaryMissing: "इन्व्हेंटरी सारांश सध्या उपलब्ध नाही।",
	summary:        "तुमच्याकडे %[1]s उत्पादने आहेत, एकूण स्टॉक %[2]s युनिट, खरेदी किमतीनुसार मूल्य %[3]s आणि विक्री किमतीनुसार %[4]s, संभाव्य नफा %[5]s।",

	opinionNone: "अजून सेल्स डेटा उपलब्ध नाही।",
	opinion:     "सेल्स डेटानुसार, %[1]s सध्या सर्वाधिक विकले जाणारे उत्पादन आहे, एकूण विक्री %[2]s।",

	greeting: "नमस्कार! मी इन्व्हेंटरी आणि स्टॉक लेव्हल तपासण्यात मदत करू शकतो।",
	help:     "तुम्ही स्टॉक लेव्हल, कमी स्टॉक, डेड स्टॉक, कालबाह्य होणारी उत्पादने, किंमत, श्रेणी, पुरवठादार किंवा इन्व्हेंटरी सारांशाबद्दल विचारू शकता, किंवा पुरवठादाराला ऑर्डर पाठवायला सांगू शकता।",
	unknown:  "मी इन्व्हेंटरी प्रश्नांमध्ये मदत करू शकतो जसे स्टॉक लेव्हल किंवा उत्पादन उपलब्धता।",

	demandSent:             "%[2]s (%[1]s) ची विनंती %[3]s ला %[4]s द्वारे पाठवली आहे।",
	demandAskSupplier:      "ही ऑर्डर कोणत्या पुरवठादाराला पाठवू?",
	demandAskProduct:       "तुम्हाला कोणते उत्पादन मागवायचे आहे?",
	demandAskQuantity:      "%[1]s किती मागवायचे?",
	demandSupplierNotFound: "पुरवठादार %[1]s ची संपर्क माहिती सापडली नाही।",
	demandNotConfigured:    "पुरवठादार सूचना सेवा सेट केलेली नाही, त्यामुळे %[1]s शी संपर्क होऊ शकला नाही।",
	demandSendFailed:       "सध्या %[1]s पर्यंत विनंती पोहोचू शकली नाही। कृपया नंतर पुन्हा प्रयत्न करा।",
	channelEmail:           "ईमेल",
	channelSMS:             "एसएमएस",

	more: "आणि आणखी %[1]d",

	emptyInput: "कृपया तुमच्या इन्व्हेंटरीबद्दल प्रश्न लिहा।",
	failure:    "माफ करा, मी ती विनंती प्रोसेस करू शकलो नाही।",
}

var tamil = phrases{
	stop: ".",
	sep:  ", ",

	stockFound:    "%[1]s இருப்பு %[2]s உள்ளது.",
	stockNotFound: "%[1]s இன்வென்டரியில் கிடைக்கவில்லை.",
	askProduct:    "எந்த பொருளைப் பற்றி தெரிய வேண்டும்?",

	lowEmpty:      "குறைந்த ஸ்டாக் பொருட்கள் எதுவும் கிடைக்கவில்லை.",
	lowList:       "இந்த பொருட்களின் ஸ்டாக் குறைவாக உள்ளது: %[1]s.",
	deadEmpty:     "டெட் ஸ்டாக் எதுவும் கிடைக்கவில்லை.",
	deadList:      "கடந்த 30 நாட்களில் விற்கப்படாத பொருட்கள்: %[1]s.",
	overEmpty:     "அதிக ஸ்டாக் உள்ள பொருட்கள் எதுவும் இல்லை.",
	overList:      "அதிகபட்ச அளவை மீறிய ஸ்டாக் உள்ள பொருட்கள்: %[1]s.",
	expiringEmpty: "அடுத்த %[1]s நாட்களில் எந்த பொருளும் காலாவதியாகவில்லை.",
	expiringList:  "அடுத்த %[1]s நாட்களில் காலாவதியாகும் பொருட்கள்: %[2]s.",

	askCategory:   "எந்த வகையைக் காட்ட வேண்டும்?",
	categoryEmpty: "%[1]s வகையில் பொருட்கள் எதுவும் கிடைக்கவில்லை.",
	categoryList:  "%[1]s வகை பொருட்கள்: %[2]s.",
	askSupplier:   "எந்த சப்ளையரின் பொருட்களைக் காட்ட வேண்டும்?",
	supplierEmpty: "சப்ளையர் %[1]s இடமிருந்து பொருட்கள் எதுவும் கிடைக்கவில்லை.",
	supplierList:  "%[1]s வழங்கும் பொருட்கள்: %[2]s.",

	detailsNotFound: "%[1]s பற்றிய விவரங்கள் கிடைக்கவில்லை.",
	detailsFound:    "%[1]s: இருப்பு %[2]s",
	detailsCategory: "வகை %[1]s",
	detailsSupplier: "சப்ளையர் %[1]s",
	detailsPrice:    "விற்பனை விலை %[1]s",
	detailsExpiry:   "காலாவதி %[1]s",

	pricingNotFound: "%[1]s விலை விவரம் கிடைக்கவில்லை.",
	pricingFound:    "%[1]s கொள்முதல் விலை %[2]s, விற்பனை விலை %[3]s",
	pricingMargin:   "லாப வரம்பு %[1]s%%",

	summaryMissing: "இன்வென்டரி சுருக்கம் தற்போது கிடைக்கவில்லை.",
	summary:        "உங்களிடம் %[1]s பொருட்கள் உள்ளன, மொத்த இருப்பு %[2]s யூனிட், கொள்முதல் மதிப்பு %[3]s, விற்பனை மதிப்பு %[4]s, எதிர்பார்க்கும் லாபம் %[5]s.",

	opinionNone: "இன்னும் விற்பனை தரவு கிடைக்கவில்லை.",
	opinion:     "விற்பனை தரவின் அடிப்படையில், %[1]s தற்போது அதிகம் விற்பனையாகும் பொருள், மொத்த விற்பனை %[2]s.",

	greeting: "வணக்கம்! இன்வென்டரி மற்றும் ஸ்டாக் லெவல் சரிபார்க்க நான் உதவ முடியும்.",
	help:     "ஸ்டாக் லெவல், குறைந்த ஸ்டாக், டெட் ஸ்டாக், காலாவதியாகும் பொருட்கள், விலை, வகை, சப்ளையர் அல்லது இன்வென்டரி சுருக்கம் பற்றி கேட்கலாம், அல்லது சப்ளையருக்கு ஆர்டர் அனுப்பச் சொல்லலாம்.",
	unknown:  "ஸ்டாக் லெவல் அல்லது தயாரிப்பு கிடைக்கும் தன்மை போன்ற இன்வென்டரி கேள்விகளில் நான் உதவ முடியும்.",

	demandSent:             "%[2]s (%[1]s) கோரிக்கை %[3]s க்கு %[4]s மூலம் அனுப்பப்பட்டது.",
	demandAskSupplier:      "இந்த ஆர்டரை எந்த சப்ளையருக்கு அனுப்ப வேண்டும்?",
	demandAskProduct:       "எந்த பொருளை ஆர்டர் செய்ய வேண்டும்?",
	demandAskQuantity:      "%[1]s எவ்வளவு ஆர்டர் செய்ய வேண்டும்?",
	demandSupplierNotFound: "சப்ளையர் %[1]s தொடர்பு விவரங்கள் கிடைக்கவில்லை.",
	demandNotConfigured:    "சப்ளையர் அறிவிப்பு அமைக்கப்படவில்லை, அதனால் %[1]s ஐ தொடர்பு கொள்ள முடியவில்லை.",
	demandSendFailed:       "இப்போது %[1]s ஐ அணுக முடியவில்லை. பின்னர் மீண்டும் முயற்சிக்கவும்.",
	channelEmail:           "மின்னஞ்சல்",
	channelSMS:             "குறுஞ்செய்தி",

	more: "மேலும் %[1]d",

	emptyInput: "உங்கள் இன்வென்டரி பற்றிய கேள்வியைத் தட்டச்சு செய்யவும்.",
	failure:    "மன்னிக்கவும், அந்த கோரிக்கையை என்னால் செயல்படுத்த முடியவில்லை.",
}

var telugu = phrases{
	stop: ".",
	sep:  ", ",

	stockFound:    "%[1]s స్టాక్ %[2]s అందుబాటులో ఉంది.",
	stockNotFound: "%[1]s ఇన్వెంటరీలో కనుగొనబడలేదు.",
	askProduct:    "ఏ ఉత్పత్తి గురించి తెలుసుకోవాలి?",

	lowEmpty:      "తక్కువ స్టాక్ వస్తువులు కనుగొనబడలేదు.",
	lowList:       "ఈ వస్తువుల స్టాక్ తక్కువగా ఉంది: %[1]s.",
	deadEmpty:     "డెడ్ స్టాక్ ఏదీ కనుగొనబడలేదు.",
	deadList:      "గత 30 రోజుల్లో అమ్ముడుపోని ఉత్పత్తులు: %[1]s.",
	overEmpty:     "అధిక స్టాక్ ఉన్న ఉత్పత్తులు లేవు.",
	overList:      "గరిష్ఠ పరిమితి దాటిన స్టాక్ ఉన్న ఉత్పత్తులు: %[1]s.",
	expiringEmpty: "రాబోయే %[1]s రోజుల్లో ఏ ఉత్పత్తి గడువు ముగియదు.",
	expiringList:  "రాబోయే %[1]s రోజుల్లో గడువు ముగిసే ఉత్పత్తులు: %[2]s.",

	askCategory:   "ఏ వర్గం చూపించాలి?",
	categoryEmpty: "%[1]s వర్గంలో ఉత్పత్తులు కనుగొనబడలేదు.",
	categoryList:  "%[1]s వర్గం ఉత్పత్తులు: %[2]s.",
	askSupplier:   "ఏ సరఫరాదారు ఉత్పత్తులు చూపించాలి?",
	supplierEmpty: "సరఫరాదారు %[1]s నుండి ఉత్పత్తులు కనుగొనబడలేదు.",
	supplierList:  "%[1]s సరఫరా చేసే ఉత్పత్తులు: %[2]s.",

	detailsNotFound: "%[1]s వివరాలు కనుగొనబడలేదు.",
	detailsFound:    "%[1]s: స్టాక్ %[2]s",
	detailsCategory: "వర్గం %[1]s",
	detailsSupplier: "సరఫరాదారు %[1]s",
	detailsPrice:    "అమ్మకం ధర %[1]s",
	detailsExpiry:   "గడువు %[1]s",

	pricingNotFound: "%[1]s ధర సమాచారం కనుగొనబడలేదు.",
	pricingFound:    "%[1]s కొనుగోలు ధర %[2]s, అమ్మకం ధర %[3]s",
	pricingMargin:   "లాభ మార్జిన్ %[1]s%%",

	summaryMissing: "ఇన్వెంటరీ సారాంశం ప్రస్తుతం అందుబాటులో లేదు.",
	summary:        "మీ వద్ద %[1]s ఉత్పత్తులు ఉన్నాయి, మొత్తం స్టాక్ %[2]s యూనిట్లు, కొనుగోలు విలువ %[3]s, అమ్మకం విలువ %[4]s, సంభావ్య లాభం %[5]s.",

	opinionNone: "ఇంకా అమ్మకాల డేటా అందుబాటులో లేదు.",
	opinion:     "అమ్మకాల డేటా ఆధారంగా, %[1]s ప్రస్తుతం ఎక్కువగా అమ్ముడవుతున్న ఉత్పత్తి, మొత్తం అమ్మకం %[2]s.",

	greeting: "నమస్కారం! ఇన్వెంటరీ మరియు స్టాక్ లెవల్ తనిఖీ చేయడంలో నేను సహాయం చేయగలను.",
	help:     "మీరు స్టాక్ లెవల్, తక్కువ స్టాక్, డెడ్ స్టాక్, గడువు ముగిసే ఉత్పత్తులు, ధరలు, వర్గాలు, సరఫరాదారులు లేదా ఇన్వెంటరీ సారాంశం గురించి అడగవచ్చు, లేదా సరఫరాదారుకు ఆర్డర్ పంపమని చెప్పవచ్చు.",
	unknown:  "స్టాక్ లెవల్ లేదా ఉత్పత్తి లభ్యత వంటి ఇన్వెంటరీ ప్రశ్నలలో నేను సహాయం చేయగలను.",

	demandSent:             "%[2]s (%[1]s) అభ్యర్థన %[3]s కు %[4]s ద్వారా పంపబడింది.",
	demandAskSupplier:      "ఈ ఆర్డర్ ఏ సరఫరాదారుకు పంపాలి?",
	demandAskProduct:       "మీరు ఏ ఉత్పత్తిని ఆర్డర్ చేయాలనుకుంటున్నారు?",
	demandAskQuantity:      "%[1]s ఎంత ఆర్డర్ చేయాలి?",
	demandSupplierNotFound: "సరఫరాదారు %[1]s సంప్రదింపు వివరాలు కనుగొనబడలేదు.",
	demandNotConfigured:    "సరఫరాదారు నోటిఫికేషన్ సెటప్ చేయబడలేదు, కాబట్టి %[1]s ను సంప్రదించలేకపోయాను.",
	demandSendFailed:       "ప్రస్తుతం %[1]s ను చేరుకోలేకపోయాను. దయచేసి తర్వాత మళ్ళీ ప్రయత్నించండి.",
	channelEmail:           "ఈమెయిల్",
	channelSMS:             "ఎస్ఎంఎస్",

	more: "మరో %[1]d",

	emptyInput: "దయచేసి మీ ఇన్వెంటరీ గురించి ప్రశ్న టైప్ చేయండి.",
	failure:    "క్షమించండి, ఆ అభ్యర్థనను నేను ప్రాసెస్ చేయలేకపోయాను.",
}
