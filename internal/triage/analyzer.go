package triage

import (
	"context"
	"strings"
	"sync"

	"github.com/medroute/hospital-finder/internal/domain/entities"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	fullPhraseScore  = 3
	partialWordScore = 1

	defaultCategory   = "general"
	defaultSpecialty  = "General Medicine"
	defaultConfidence = 0.5
)

var (
	triageCounterOnce sync.Once
	triageCounter     metric.Int64Counter
)

// Analyzer classifies free-text symptom descriptions into a medical
// category, recommended specialty, and urgency tier using keyword rules.
// All lookup tables are fixed at process start, so a single Analyzer is
// safe for unlimited concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new symptom analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies a symptom description. It never fails: empty or
// unrecognized text falls back to the general category with normal
// priority and 0.5 confidence.
func (a *Analyzer) Analyze(symptoms, languageCode string) *entities.TriageResult {
	normalized := strings.ToLower(strings.TrimSpace(symptoms))
	if languageCode != "" && languageCode != "en" {
		normalized = Translate(normalized, languageCode)
	}

	scores := scoreCategories(normalized)
	priority := determinePriority(normalized)

	result := &entities.TriageResult{
		Category:   defaultCategory,
		Specialty:  defaultSpecialty,
		Priority:   priority,
		Confidence: defaultConfidence,
		RawScores:  scores,
	}

	if category, score, ok := topCategory(scores); ok {
		result.Category = category
		result.Confidence = float64(score) / 10.0
		if result.Confidence > 1.0 {
			result.Confidence = 1.0
		}
		if specialty, ok := specialtyByCategory[category]; ok {
			result.Specialty = specialty
		}
	}

	recordTriageMetric(result)
	return result
}

// scoreCategories scores every category against the normalized text. A
// full phrase occurrence scores 3; when the full phrase is absent, a
// multi-word phrase still scores 1 if any of its words occurs on its own.
// Categories that score zero are omitted.
func scoreCategories(symptoms string) map[string]int {
	scores := make(map[string]int)
	if symptoms == "" {
		return scores
	}

	for _, ck := range medicalKeywords {
		score := 0
		for _, phrase := range ck.phrases {
			if strings.Contains(symptoms, phrase) {
				score += fullPhraseScore
				continue
			}
			words := strings.Fields(phrase)
			if len(words) < 2 {
				continue
			}
			for _, word := range words {
				if strings.Contains(symptoms, word) {
					score += partialWordScore
					break
				}
			}
		}
		if score > 0 {
			scores[ck.category] = score
		}
	}

	return scores
}

// topCategory picks the highest-scoring category. Ties resolve to the
// category defined earliest in medicalKeywords, which is why the winner is
// selected by walking the ordered table instead of the score map.
func topCategory(scores map[string]int) (string, int, bool) {
	best := ""
	bestScore := 0
	for _, ck := range medicalKeywords {
		if score, ok := scores[ck.category]; ok && score > bestScore {
			best = ck.category
			bestScore = score
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}

// determinePriority scans the critical list first, then the urgent list,
// against the normalized post-translation text. It is independent of the
// category winner.
func determinePriority(symptoms string) entities.Priority {
	for _, phrase := range criticalKeywords {
		if strings.Contains(symptoms, phrase) {
			return entities.PriorityCritical
		}
	}
	for _, phrase := range urgentKeywords {
		if strings.Contains(symptoms, phrase) {
			return entities.PriorityUrgent
		}
	}
	return entities.PriorityNormal
}

func initTriageCounter() {
	meter := otel.Meter("github.com/medroute/hospital-finder/triage")
	counter, err := meter.Int64Counter(
		"triage.analysis.count",
		metric.WithDescription("Count of symptom analyses by category and priority"),
	)
	if err == nil {
		triageCounter = counter
	}
}

func recordTriageMetric(result *entities.TriageResult) {
	triageCounterOnce.Do(initTriageCounter)
	if triageCounter == nil {
		return
	}
	triageCounter.Add(
		context.Background(),
		1,
		metric.WithAttributes(
			attribute.String("triage.category", result.Category),
			attribute.String("triage.priority", string(result.Priority)),
		),
	)
}
