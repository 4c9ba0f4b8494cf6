package services

import (
	"context"
	"time"

	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/domain/repositories"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
	"github.com/medroute/hospital-finder/internal/ranking"
	"github.com/medroute/hospital-finder/internal/triage"
)

// FindHospitalsRequest carries a validated triage search request.
type FindHospitalsRequest struct {
	Latitude  float64
	Longitude float64
	Symptoms  string
	Language  string
	SessionID string
}

// FindHospitalsResult bundles the triage analysis with the ranked hospitals.
type FindHospitalsResult struct {
	Analysis  *entities.TriageResult     `json:"analysis"`
	Hospitals []*entities.ScoredHospital `json:"hospitals"`
}

// HospitalService orchestrates symptom triage and hospital ranking: it
// classifies the symptom text, fetches priority-eligible candidates, and
// runs the two-stage ranking over them.
type HospitalService struct {
	repo     repositories.HospitalRepository
	analyzer *triage.Analyzer
	ranker   *ranking.Ranker
	sessions *SessionService
	metrics  *observability.Metrics

	maxRadiusKm       float64
	emergencyRadiusKm float64
}

// NewHospitalService creates a new hospital service. The session service
// and metrics are optional.
func NewHospitalService(repo repositories.HospitalRepository, analyzer *triage.Analyzer, ranker *ranking.Ranker) *HospitalService {
	return &HospitalService{
		repo:              repo,
		analyzer:          analyzer,
		ranker:            ranker,
		maxRadiusKm:       ranking.DefaultRadiusKm,
		emergencyRadiusKm: ranking.EmergencyRadiusKm,
	}
}

// SetSearchRadii overrides the default search radii. Non-positive values
// keep the current ones.
func (s *HospitalService) SetSearchRadii(maxRadiusKm, emergencyRadiusKm float64) {
	if maxRadiusKm > 0 {
		s.maxRadiusKm = maxRadiusKm
	}
	if emergencyRadiusKm > 0 {
		s.emergencyRadiusKm = emergencyRadiusKm
	}
}

// SetSessionService enables per-session triage capture.
func (s *HospitalService) SetSessionService(sessions *SessionService) {
	s.sessions = sessions
}

// SetMetrics enables ranking metrics.
func (s *HospitalService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// FindHospitals analyzes the symptoms and returns hospitals ranked for the
// resulting specialty and priority within the configured search radius.
func (s *HospitalService) FindHospitals(ctx context.Context, req FindHospitalsRequest) (*FindHospitalsResult, error) {
	analysis := s.analyzer.Analyze(req.Symptoms, req.Language)

	candidates, err := s.repo.GetAll(ctx, analysis.Priority)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ranked, err := s.ranker.Rank(candidates, req.Latitude, req.Longitude, analysis.Specialty, analysis.Priority, s.maxRadiusKm)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		observability.RecordRankingMetric(ctx, s.metrics, string(analysis.Priority), len(candidates), time.Since(start))
	}

	result := &FindHospitalsResult{
		Analysis:  analysis,
		Hospitals: ranked,
	}

	if s.sessions != nil && req.SessionID != "" {
		s.sessions.Save(ctx, req.SessionID, req.Symptoms, analysis, ranked)
	}

	return result, nil
}

// FindEmergencyHospitals returns hospitals with round-the-clock emergency
// services ranked for a critical case within the emergency radius.
func (s *HospitalService) FindEmergencyHospitals(ctx context.Context, latitude, longitude float64) ([]*entities.ScoredHospital, error) {
	candidates, err := s.repo.GetAll(ctx, entities.PriorityCritical)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ranked, err := s.ranker.RankEmergency(candidates, latitude, longitude, s.emergencyRadiusKm)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		observability.RecordRankingMetric(ctx, s.metrics, string(entities.PriorityCritical), len(candidates), time.Since(start))
	}

	return ranked, nil
}

// GetHospital returns a single hospital by ID.
func (s *HospitalService) GetHospital(ctx context.Context, id string) (*entities.Hospital, error) {
	return s.repo.GetByID(ctx, id)
}
