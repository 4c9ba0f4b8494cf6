package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/medroute/hospital-finder/internal/domain/entities"
)

// Score weights. The four components sum to at most 105.
const (
	specialtyMatchScore  = 40.0
	generalMedicineScore = 20.0
	maxRatingScore       = 20.0
	emergencyBonus       = 10.0
	ambulanceBonus       = 5.0
	avgUrbanSpeedKmh     = 25.0
	minTravelTimeMinutes = 5
	DefaultRadiusKm      = 50.0
	EmergencyRadiusKm    = 30.0
)

// Ranker turns a candidate hospital list plus a triage outcome into a
// scored, ordered recommendation list. It is stateless and safe for
// concurrent use.
//
// The ranker assumes its candidates were already pre-filtered for the
// given priority by the repository (critical: emergency and 24/7 only,
// urgent: emergency only); it does not re-check those flags.
type Ranker struct{}

// NewRanker creates a new hospital ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Annotate computes distance, travel time, and specialty match for each
// candidate, drops anything beyond maxRadiusKm, and returns the survivors
// sorted by ascending distance. That distance order is the tie-break that
// Score preserves for equal totals.
func (r *Ranker) Annotate(candidates []*entities.Hospital, userLat, userLon float64, requiredSpecialty string, maxRadiusKm float64) ([]*entities.ScoredHospital, error) {
	if err := validateCoordinate(userLat, userLon); err != nil {
		return nil, err
	}

	annotated := make([]*entities.ScoredHospital, 0, len(candidates))
	for _, h := range candidates {
		distanceKm, err := Distance(userLat, userLon, h.Location.Latitude, h.Location.Longitude)
		if err != nil {
			return nil, err
		}
		if distanceKm > maxRadiusKm {
			continue
		}

		annotated = append(annotated, &entities.ScoredHospital{
			Hospital:          *h,
			DistanceKm:        math.Round(distanceKm*100) / 100,
			TravelTimeMinutes: travelTimeMinutes(distanceKm),
			SpecialtyMatch:    matchesSpecialty(h.Specialties, requiredSpecialty),
		})
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].DistanceKm < annotated[j].DistanceKm
	})

	return annotated, nil
}

// Score assigns each annotated hospital its total score and returns the
// list sorted by descending score. The sort is stable and keyed on score
// alone, so equal totals keep the distance-ascending order Annotate
// established.
func (r *Ranker) Score(annotated []*entities.ScoredHospital, priority entities.Priority) []*entities.ScoredHospital {
	for _, h := range annotated {
		h.TotalScore = scoreHospital(h, priority)
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].TotalScore > annotated[j].TotalScore
	})

	return annotated
}

// Rank runs both stages in sequence.
func (r *Ranker) Rank(candidates []*entities.Hospital, userLat, userLon float64, requiredSpecialty string, priority entities.Priority, maxRadiusKm float64) ([]*entities.ScoredHospital, error) {
	annotated, err := r.Annotate(candidates, userLat, userLon, requiredSpecialty, maxRadiusKm)
	if err != nil {
		return nil, err
	}
	return r.Score(annotated, priority), nil
}

// RankEmergency ranks candidates for a critical-priority lookup within the
// given radius. Same two stages, not a distinct algorithm.
func (r *Ranker) RankEmergency(candidates []*entities.Hospital, userLat, userLon, maxRadiusKm float64) ([]*entities.ScoredHospital, error) {
	return r.Rank(candidates, userLat, userLon, "", entities.PriorityCritical, maxRadiusKm)
}

func scoreHospital(h *entities.ScoredHospital, priority entities.Priority) float64 {
	score := 0.0

	// 1. Specialty match, with partial credit for general medicine
	if h.SpecialtyMatch {
		score += specialtyMatchScore
	} else if hasSpecialty(h.Specialties, "General Medicine") {
		score += generalMedicineScore
	}

	// 2. Distance tier
	score += distanceScore(h.DistanceKm)

	// 3. Rating
	score += (h.Rating / 5.0) * maxRatingScore

	// 4. Readiness, only for elevated priority
	if priority.IsElevated() {
		if h.HasEmergency {
			score += emergencyBonus
		}
		if h.HasAmbulance {
			score += ambulanceBonus
		}
	}

	return math.Round(score*10) / 10
}

func distanceScore(distanceKm float64) float64 {
	switch {
	case distanceKm <= 5:
		return 30
	case distanceKm <= 10:
		return 25
	case distanceKm <= 20:
		return 15
	case distanceKm <= 30:
		return 10
	default:
		return 5
	}
}

// matchesSpecialty reports whether any of the hospital's specialty labels
// contains the required specialty, case-insensitively. An empty
// requirement matches everything.
func matchesSpecialty(specialties []string, required string) bool {
	if required == "" {
		return true
	}
	required = strings.ToLower(required)
	for _, s := range specialties {
		if strings.Contains(strings.ToLower(s), required) {
			return true
		}
	}
	return false
}

func hasSpecialty(specialties []string, name string) bool {
	for _, s := range specialties {
		if s == name {
			return true
		}
	}
	return false
}

func travelTimeMinutes(distanceKm float64) int {
	minutes := int(distanceKm / avgUrbanSpeedKmh * 60)
	if minutes < minTravelTimeMinutes {
		return minTravelTimeMinutes
	}
	return minutes
}
