package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medroute/hospital-finder/internal/api/handlers"
	"github.com/medroute/hospital-finder/internal/application/services"
	"github.com/medroute/hospital-finder/internal/chat"
	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/domain/providers"
	"github.com/stretchr/testify/assert"
)

type stubSessionCache struct {
	store  map[string][]byte
	getErr error
}

func newStubSessionCache() *stubSessionCache {
	return &stubSessionCache{store: map[string][]byte{}}
}

func (c *stubSessionCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	data, ok := c.store[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return data, nil
}

func (c *stubSessionCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.store[key] = value
	return nil
}

func (c *stubSessionCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *stubSessionCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

func TestChat_Success(t *testing.T) {
	handler := handlers.NewChatHandler(chat.NewResponder(1), nil)

	body := `{"message":"hello"}`
	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Response)
}

func TestChat_EmergencyMessage(t *testing.T) {
	handler := handlers.NewChatHandler(chat.NewResponder(1), nil)

	body := `{"message":"my father is unconscious"}`
	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Response string `json:"response"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Contains(t, response.Response, "108")
}

func TestChat_MissingMessage(t *testing.T) {
	handler := handlers.NewChatHandler(chat.NewResponder(1), nil)

	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_InvalidJSON(t *testing.T) {
	handler := handlers.NewChatHandler(chat.NewResponder(1), nil)

	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader("nope"))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_IncludesLastTriageForKnownSession(t *testing.T) {
	sessions := services.NewSessionService(newStubSessionCache(), 60)
	sessions.Save(context.Background(), "sess-1", "fever", &entities.TriageResult{
		Category:  "infectious",
		Specialty: "Infectious Disease",
		Priority:  entities.PriorityNormal,
	}, nil)

	handler := handlers.NewChatHandler(chat.NewResponder(1), sessions)

	body := `{"message":"hello","session_id":"sess-1"}`
	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success      bool                   `json:"success"`
		Response     string                 `json:"response"`
		LastAnalysis *entities.TriageResult `json:"last_analysis"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	if assert.NotNil(t, response.LastAnalysis) {
		assert.Equal(t, "infectious", response.LastAnalysis.Category)
	}
}

func TestChat_UnknownSessionOmitsContext(t *testing.T) {
	sessions := services.NewSessionService(newStubSessionCache(), 60)
	handler := handlers.NewChatHandler(chat.NewResponder(1), sessions)

	body := `{"message":"hello","session_id":"never-seen"}`
	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.NotContains(t, payload, "last_analysis")
}

func TestChat_SessionBackendFailureStillReplies(t *testing.T) {
	cache := newStubSessionCache()
	cache.getErr = assert.AnError
	sessions := services.NewSessionService(cache, 60)
	handler := handlers.NewChatHandler(chat.NewResponder(1), sessions)

	body := `{"message":"hello","session_id":"sess-1"}`
	req := httptest.NewRequest("POST", "/api/chatbot", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.NotContains(t, payload, "last_analysis")
	assert.NotEmpty(t, payload["response"])
}
