package triage

import "strings"

// substitution is a single native-word → English replacement. The pairs are
// applied in order, so the tables stay ordered slices.
type substitution struct {
	native  string
	english string
}

// Phrase-substitution tables for non-English symptom input. This is a
// literal lookup, not translation: only the words the classifier keys on
// are mapped, everything else passes through untouched.
var translationTables = map[string][]substitution{
	"hi": {
		{"बुखार", "fever"},
		{"सिरदर्द", "headache"},
		{"दर्द", "pain"},
		{"पेट", "stomach"},
		{"खांसी", "cough"},
		{"सांस", "breathing"},
		{"चक्कर", "dizziness"},
		{"कमजोरी", "weakness"},
		{"उल्टी", "vomiting"},
	},
	"te": {
		{"జ్వరం", "fever"},
		{"తలనొప్పి", "headache"},
		{"నొప్పి", "pain"},
		{"కడుపు", "stomach"},
		{"దగ్గు", "cough"},
		{"శ్వాస", "breathing"},
		{"తలతిరగడం", "dizziness"},
		{"బలహీనత", "weakness"},
		{"వాంతులు", "vomiting"},
	},
}

// Translate substitutes known native-language symptom words with their
// English equivalents. Unknown language codes are a no-op.
func Translate(text, languageCode string) string {
	table, ok := translationTables[languageCode]
	if !ok {
		return text
	}
	for _, sub := range table {
		text = strings.ReplaceAll(text, sub.native, sub.english)
	}
	return text
}
