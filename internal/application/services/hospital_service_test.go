package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/medroute/hospital-finder/internal/application/services"
	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/domain/providers"
	"github.com/medroute/hospital-finder/internal/ranking"
	"github.com/medroute/hospital-finder/internal/triage"
	"github.com/stretchr/testify/assert"
)

type stubHospitalRepo struct {
	hospitals     []*entities.Hospital
	err           error
	lastPriority  entities.Priority
	getAllCalls   int
	getByIDResult *entities.Hospital
	getByIDErr    error
}

func (s *stubHospitalRepo) GetAll(ctx context.Context, priority entities.Priority) ([]*entities.Hospital, error) {
	s.getAllCalls++
	s.lastPriority = priority
	if s.err != nil {
		return nil, s.err
	}

	// Mirror the adapter's pre-filter contract.
	filtered := []*entities.Hospital{}
	for _, h := range s.hospitals {
		switch priority {
		case entities.PriorityCritical:
			if h.HasEmergency && h.Open247 {
				filtered = append(filtered, h)
			}
		case entities.PriorityUrgent:
			if h.HasEmergency {
				filtered = append(filtered, h)
			}
		default:
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (s *stubHospitalRepo) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	return s.getByIDResult, s.getByIDErr
}

func (s *stubHospitalRepo) Create(ctx context.Context, hospital *entities.Hospital) error {
	s.hospitals = append(s.hospitals, hospital)
	return nil
}

type stubCache struct {
	store  map[string][]byte
	getErr error
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string][]byte{}}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	data, ok := c.store[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return data, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.store[key] = value
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

func sampleHospitals() []*entities.Hospital {
	return []*entities.Hospital{
		{
			ID:           "full-service",
			Name:         "Full Service Hospital",
			Location:     entities.Location{Latitude: 17.73, Longitude: 83.30},
			Rating:       4.5,
			HasEmergency: true,
			HasAmbulance: true,
			Open247:      true,
			Specialties:  []string{"Cardiology", "General Medicine"},
		},
		{
			ID:          "day-clinic",
			Name:        "Day Clinic",
			Location:    entities.Location{Latitude: 17.74, Longitude: 83.31},
			Rating:      4.0,
			Specialties: []string{"Dermatology"},
		},
	}
}

func newService(repo *stubHospitalRepo) *services.HospitalService {
	return services.NewHospitalService(repo, triage.NewAnalyzer(), ranking.NewRanker())
}

func TestFindHospitals_NormalPriorityKeepsAllCandidates(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	service := newService(repo)

	result, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "i have a skin rash",
	})

	assert.NoError(t, err)
	assert.Equal(t, entities.PriorityNormal, repo.lastPriority)
	assert.Equal(t, "dermatology", result.Analysis.Category)
	assert.Len(t, result.Hospitals, 2)
	// The dermatology clinic matches the required specialty and outranks
	// the closer general hospital.
	assert.Equal(t, "day-clinic", result.Hospitals[0].ID)
}

func TestFindHospitals_CriticalSymptomsRestrictCandidates(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	service := newService(repo)

	result, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "my father had a heart attack",
	})

	assert.NoError(t, err)
	assert.Equal(t, entities.PriorityCritical, repo.lastPriority)
	if assert.Len(t, result.Hospitals, 1) {
		assert.Equal(t, "full-service", result.Hospitals[0].ID)
	}
}

func TestFindHospitals_RepositoryErrorPropagates(t *testing.T) {
	repo := &stubHospitalRepo{err: errors.New("db down")}
	service := newService(repo)

	_, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "fever",
	})

	assert.Error(t, err)
}

func TestFindHospitals_InvalidCoordinatesRejected(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	service := newService(repo)

	_, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  95,
		Longitude: 83.30,
		Symptoms:  "fever",
	})

	assert.Error(t, err)
}

func TestFindHospitals_CapturesSessionSnapshot(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	cache := newStubCache()
	service := newService(repo)
	service.SetSessionService(services.NewSessionService(cache, 60))

	_, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "fever",
		SessionID: "sess-1",
	})

	assert.NoError(t, err)
	data, ok := cache.store["session:triage:sess-1"]
	if assert.True(t, ok) {
		var snapshot services.SessionSnapshot
		assert.NoError(t, json.Unmarshal(data, &snapshot))
		assert.Equal(t, "fever", snapshot.Symptoms)
		assert.Equal(t, "infectious", snapshot.Analysis.Category)
	}
}

func TestFindHospitals_NoSessionIDSkipsCapture(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	cache := newStubCache()
	service := newService(repo)
	service.SetSessionService(services.NewSessionService(cache, 60))

	_, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "fever",
	})

	assert.NoError(t, err)
	assert.Empty(t, cache.store)
}

func TestFindHospitals_ConfiguredRadiusChangesCut(t *testing.T) {
	hospitals := sampleHospitals()
	// Roughly 42 km north of the user, inside the default 50 km radius.
	hospitals = append(hospitals, &entities.Hospital{
		ID:       "edge-of-town",
		Name:     "Edge Of Town Hospital",
		Location: entities.Location{Latitude: 18.10, Longitude: 83.30},
		Rating:   3.5,
	})
	repo := &stubHospitalRepo{hospitals: hospitals}
	service := newService(repo)

	req := services.FindHospitalsRequest{Latitude: 17.72, Longitude: 83.30, Symptoms: "fever"}

	result, err := service.FindHospitals(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, result.Hospitals, 3)

	service.SetSearchRadii(30, 0)

	result, err = service.FindHospitals(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, result.Hospitals, 2)
	for _, h := range result.Hospitals {
		assert.NotEqual(t, "edge-of-town", h.ID)
	}
}

func TestFindEmergencyHospitals_ConfiguredRadiusChangesCut(t *testing.T) {
	// Emergency-ready but ~42 km out, beyond the default 30 km emergency
	// radius.
	remote := &entities.Hospital{
		ID:           "remote",
		Name:         "Remote Emergency Hospital",
		Location:     entities.Location{Latitude: 18.10, Longitude: 83.30},
		Rating:       4.0,
		HasEmergency: true,
		HasAmbulance: true,
		Open247:      true,
	}
	repo := &stubHospitalRepo{hospitals: append(sampleHospitals(), remote)}
	service := newService(repo)

	hospitals, err := service.FindEmergencyHospitals(context.Background(), 17.72, 83.30)
	assert.NoError(t, err)
	assert.Len(t, hospitals, 1)

	service.SetSearchRadii(0, 50)

	hospitals, err = service.FindEmergencyHospitals(context.Background(), 17.72, 83.30)
	assert.NoError(t, err)
	assert.Len(t, hospitals, 2)
}

func TestSetSearchRadii_IgnoresNonPositiveValues(t *testing.T) {
	hospitals := append(sampleHospitals(), &entities.Hospital{
		ID:       "edge-of-town",
		Name:     "Edge Of Town Hospital",
		Location: entities.Location{Latitude: 18.10, Longitude: 83.30},
		Rating:   3.5,
	})
	repo := &stubHospitalRepo{hospitals: hospitals}
	service := newService(repo)

	service.SetSearchRadii(0, -1)

	result, err := service.FindHospitals(context.Background(), services.FindHospitalsRequest{
		Latitude:  17.72,
		Longitude: 83.30,
		Symptoms:  "fever",
	})

	// The 50 km default still applies, so the far hospital stays in.
	assert.NoError(t, err)
	assert.Len(t, result.Hospitals, 3)
}

func TestFindEmergencyHospitals(t *testing.T) {
	repo := &stubHospitalRepo{hospitals: sampleHospitals()}
	service := newService(repo)

	hospitals, err := service.FindEmergencyHospitals(context.Background(), 17.72, 83.30)

	assert.NoError(t, err)
	assert.Equal(t, entities.PriorityCritical, repo.lastPriority)
	if assert.Len(t, hospitals, 1) {
		assert.Equal(t, "full-service", hospitals[0].ID)
		// Emergency and ambulance readiness both pay out at critical
		// priority.
		assert.Greater(t, hospitals[0].TotalScore, 40.0)
	}
}

func TestGetHospital(t *testing.T) {
	repo := &stubHospitalRepo{getByIDResult: &entities.Hospital{ID: "h-1", Name: "Test"}}
	service := newService(repo)

	hospital, err := service.GetHospital(context.Background(), "h-1")

	assert.NoError(t, err)
	assert.Equal(t, "Test", hospital.Name)
}
