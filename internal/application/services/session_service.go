package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/domain/providers"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
)

// SessionSnapshot captures the last triage outcome for a session so a
// follow-up request (or the chat flow) can refer back to it.
type SessionSnapshot struct {
	Symptoms  string                     `json:"symptoms"`
	Analysis  *entities.TriageResult     `json:"analysis"`
	Hospitals []*entities.ScoredHospital `json:"hospitals"`
	Timestamp time.Time                  `json:"timestamp"`
}

// SessionService stores per-session triage snapshots in the cache.
// Failures are logged and swallowed: session capture is best-effort and
// must never fail a search.
type SessionService struct {
	cache      providers.CacheProvider
	ttlSeconds int
}

// NewSessionService creates a new session service.
func NewSessionService(cache providers.CacheProvider, ttlSeconds int) *SessionService {
	return &SessionService{
		cache:      cache,
		ttlSeconds: ttlSeconds,
	}
}

// Save stores the triage snapshot for a session.
func (s *SessionService) Save(ctx context.Context, sessionID, symptoms string, analysis *entities.TriageResult, hospitals []*entities.ScoredHospital) {
	snapshot := SessionSnapshot{
		Symptoms:  symptoms,
		Analysis:  analysis,
		Hospitals: hospitals,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("failed to encode session snapshot")
		return
	}

	if err := s.cache.Set(ctx, sessionKey(sessionID), data, s.ttlSeconds); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("failed to store session snapshot")
	}
}

// Get returns the stored snapshot for a session. A missing session is
// nil without error; backend failures are reported to the caller.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	data, err := s.cache.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, providers.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var snapshot SessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func sessionKey(sessionID string) string {
	return "session:triage:" + sessionID
}
