package triage

// categoryKeywords binds a medical category to its trigger phrases. The
// slice order below is load-bearing: it is the scan order for scoring and
// the tie-break order when two categories reach the same score, so it must
// stay an ordered list rather than a map.
type categoryKeywords struct {
	category string
	phrases  []string
}

var medicalKeywords = []categoryKeywords{
	{
		category: "cardiovascular",
		phrases: []string{
			"chest pain", "heart attack", "cardiac", "palpitations", "angina",
			"shortness of breath", "irregular heartbeat", "heart pounding",
			"chest pressure", "heart racing", "cardiovascular",
		},
	},
	{
		category: "respiratory",
		phrases: []string{
			"breathing", "cough", "asthma", "pneumonia", "bronchitis",
			"wheezing", "respiratory", "lung", "breathless", "dyspnea",
			"chest congestion", "difficulty breathing",
		},
	},
	{
		category: "neurological",
		phrases: []string{
			"headache", "migraine", "seizure", "stroke", "paralysis",
			"numbness", "tingling", "dizziness", "vertigo", "confusion",
			"memory loss", "neurological", "brain", "nerve pain",
		},
	},
	{
		category: "gastrointestinal",
		phrases: []string{
			"stomach pain", "abdominal pain", "nausea", "vomiting", "diarrhea",
			"constipation", "digestive", "gastric", "intestinal", "bowel",
			"food poisoning", "indigestion", "acid reflux",
		},
	},
	{
		category: "orthopedic",
		phrases: []string{
			"bone", "fracture", "joint pain", "back pain", "spinal",
			"arthritis", "muscle pain", "sprain", "strain", "orthopedic",
			"knee pain", "shoulder pain", "hip pain",
		},
	},
	{
		category: "infectious",
		phrases: []string{
			"fever", "infection", "flu", "cold", "viral", "bacterial",
			"malaria", "dengue", "typhoid", "chills", "sweating",
			"body ache", "fatigue",
		},
	},
	{
		category: "emergency",
		phrases: []string{
			"accident", "injury", "bleeding", "trauma", "burn", "wound",
			"fall", "crash", "emergency", "severe pain", "unconscious",
			"heavy bleeding", "deep cut",
		},
	},
	{
		category: "pediatric",
		phrases: []string{
			"child", "baby", "infant", "kid", "pediatric", "newborn",
			"toddler", "childhood",
		},
	},
	{
		category: "gynecological",
		phrases: []string{
			"pregnancy", "prenatal", "delivery", "gynecological", "menstrual",
			"obstetric", "pregnant", "labor", "gynecology",
		},
	},
	{
		category: "dermatology",
		phrases: []string{
			"skin", "rash", "allergy", "itch", "dermatology", "acne",
			"eczema", "psoriasis", "skin infection", "hives",
		},
	},
	{
		category: "ophthalmology",
		phrases: []string{
			"eye", "vision", "blind", "ophthalmology", "visual", "sight",
			"eye pain", "blurred vision", "eye infection",
		},
	},
	{
		category: "ent",
		phrases: []string{
			"ear", "nose", "throat", "ent", "hearing", "sinus", "tonsil",
			"ear pain", "sore throat", "nasal", "hearing loss",
		},
	},
	{
		category: "general",
		phrases: []string{
			"general", "checkup", "consultation", "medical", "health",
			"wellness", "screening",
		},
	},
}

// specialtyByCategory maps every category to the hospital department it
// should be routed to.
var specialtyByCategory = map[string]string{
	"cardiovascular":   "Cardiology",
	"respiratory":      "Pulmonology",
	"neurological":     "Neurology",
	"gastrointestinal": "Gastroenterology",
	"orthopedic":       "Orthopedics",
	"infectious":       "Infectious Disease",
	"emergency":        "Emergency Medicine",
	"pediatric":        "Pediatrics",
	"gynecological":    "Obstetrics & Gynecology",
	"dermatology":      "Dermatology",
	"ophthalmology":    "Ophthalmology",
	"ent":              "ENT",
	"general":          "General Medicine",
}

// Priority phrase lists, scanned first-match-wins in the order given.
// Absence of a match in both lists means normal priority.
var criticalKeywords = []string{
	"heart attack", "stroke", "unconscious", "heavy bleeding",
	"severe bleeding", "can't breathe", "chest pain", "paralysis",
	"severe burns", "head injury", "poisoning", "seizure",
}

var urgentKeywords = []string{
	"severe pain", "high fever", "difficulty breathing", "vomiting blood",
	"severe headache", "abdominal pain", "accident", "injury",
	"deep cut", "broken bone", "very dizzy",
}
