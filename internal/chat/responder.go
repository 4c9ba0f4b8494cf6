package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// Intent is the coarse classification of a chat message. The responder
// does no ranking or scoring; it only routes to a canned template set.
type Intent string

const (
	IntentEmergency     Intent = "emergency"
	IntentGreeting      Intent = "greeting"
	IntentThanks        Intent = "thanks"
	IntentSymptom       Intent = "symptom"
	IntentLocation      Intent = "location"
	IntentHospitalInfo  Intent = "hospital_info"
	IntentMedicalAdvice Intent = "medical_advice"
	IntentUnknown       Intent = "unknown"
)

var responseTemplates = map[Intent][]string{
	IntentGreeting: {
		"Hello! I'm here to help you find the right hospital. How can I assist you today?",
		"Hi! I can help you with medical queries and finding hospitals. What's bothering you?",
		"Welcome! I'm your medical assistant. How may I help you?",
	},
	IntentSymptom: {
		"I understand you're experiencing {symptoms}. For an accurate diagnosis, I recommend visiting a hospital. Would you like me to find nearby hospitals for you?",
		"Based on what you've told me, it would be best to consult with a medical professional. Shall I help you find appropriate hospitals nearby?",
		"I can help you find hospitals that specialize in treating {symptoms}. What's your location?",
	},
	IntentEmergency: {
		"This sounds like an emergency! Please call emergency services (108 in India) immediately or visit the nearest emergency room. Would you like me to find emergency hospitals near you?",
		"For urgent medical issues, please seek immediate medical attention. Call 108 or go to the nearest hospital. I can help you find emergency hospitals nearby.",
		"This requires immediate medical attention. Please call an ambulance (108) or have someone take you to the emergency room right away.",
	},
	IntentLocation: {
		"To find the best hospitals for you, I'll need your location. Can you share your city or allow location access?",
		"I can search for hospitals near you. What city are you in?",
		"Please share your location so I can find nearby hospitals that can help you.",
	},
	IntentHospitalInfo: {
		"I can provide information about hospitals including their specialties, ratings, distance from you, and contact details. What would you like to know?",
		"I have detailed information about hospitals in your area. Would you like to know about specific hospitals or search by specialty?",
		"I can help you compare hospitals based on distance, ratings, specialties, and emergency services. What's most important to you?",
	},
	IntentThanks: {
		"You're welcome! Take care and get well soon. Feel free to ask if you need anything else.",
		"Happy to help! Wishing you good health. Don't hesitate to reach out if you have more questions.",
		"Glad I could assist! Stay safe and feel better soon.",
	},
	IntentMedicalAdvice: {
		"While I can provide general information, it's important to consult with a healthcare professional for proper diagnosis and treatment. Would you like me to find doctors or hospitals near you?",
		"For medical advice, it's best to speak with a qualified doctor. I can help you find the right hospital or specialist. Shall I search for you?",
		"I recommend getting a professional medical opinion. I can help you find appropriate healthcare providers nearby.",
	},
	IntentUnknown: {
		"I'm not sure I understood that. Could you rephrase your question? I can help you find hospitals or answer basic medical queries.",
		"I didn't quite catch that. I specialize in helping you find hospitals and understand symptoms. How can I help?",
		"Could you please provide more details? I'm here to help you find the right hospital for your needs.",
	},
}

var emergencyKeywords = []string{
	"emergency", "urgent", "severe", "critical", "heart attack",
	"stroke", "bleeding", "unconscious", "can't breathe", "accident",
}

var greetingKeywords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}

var thanksKeywords = []string{"thank", "thanks", "appreciate"}

var symptomKeywords = []string{
	"pain", "ache", "fever", "cough", "headache", "sick", "ill",
	"dizzy", "nausea", "vomit", "diarrhea", "symptom", "feel",
}

var locationKeywords = []string{"where", "location", "near", "nearby", "close", "around"}

var hospitalKeywords = []string{"hospital", "clinic", "doctor", "emergency", "specialist"}

var adviceKeywords = []string{"what should i do", "what can i do", "advice", "recommend", "suggest"}

// Responder is a rule-based chat responder for basic medical queries.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a responder seeded from the given source. Pass a
// fixed seed in tests for deterministic template choice.
func NewResponder(seed int64) *Responder {
	return &Responder{rng: rand.New(rand.NewSource(seed))}
}

// Respond generates a reply for the given message. Emergency phrasing
// always wins over every other intent.
func (r *Responder) Respond(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))

	intent := DetectIntent(normalized)
	response := r.pick(responseTemplates[intent])

	if intent == IntentSymptom {
		symptoms := extractSymptoms(normalized)
		response = strings.ReplaceAll(response, "{symptoms}", symptoms)
	}

	return response
}

// DetectIntent classifies a normalized message into a response intent.
func DetectIntent(message string) Intent {
	if containsAny(message, emergencyKeywords) {
		return IntentEmergency
	}
	if containsAny(message, greetingKeywords) {
		return IntentGreeting
	}
	if containsAny(message, thanksKeywords) {
		return IntentThanks
	}
	if containsAny(message, symptomKeywords) {
		return IntentSymptom
	}
	if containsAny(message, locationKeywords) {
		return IntentLocation
	}
	if containsAny(message, hospitalKeywords) {
		return IntentHospitalInfo
	}
	if containsAny(message, adviceKeywords) {
		return IntentMedicalAdvice
	}
	return IntentUnknown
}

func (r *Responder) pick(templates []string) string {
	if len(templates) == 0 {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return templates[r.rng.Intn(len(templates))]
}

func extractSymptoms(message string) string {
	symptomWords := []string{
		"pain", "ache", "fever", "cough", "headache", "dizzy",
		"nausea", "vomit", "diarrhea", "weakness", "fatigue",
	}

	var found []string
	for _, word := range symptomWords {
		if strings.Contains(message, word) {
			found = append(found, word)
		}
	}

	if len(found) == 0 {
		return "your condition"
	}
	return strings.Join(found, ", ")
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
