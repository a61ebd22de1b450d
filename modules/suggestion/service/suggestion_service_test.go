package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteerhub/core/config"
	"volunteerhub/modules/suggestion/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testVolunteer = dto.VolunteerData{
		Firstname:             "Maria",
		Lastname:              "Cruz",
		TimeAvailability:      "10:00 AM - 11:00 AM",
		PreferredVolunteering: "Education",
		Location:              "Quezon City",
	}
	testEvent = dto.EventData{
		EventID:         "evt-1",
		EventTitle:      "Community Tutoring Day",
		TimeStart:       "9:00 AM",
		TimeEnd:         "12:00 PM",
		EventObjectives: "promote education",
	}
)

func newTestService(handler http.HandlerFunc) (SuggestionServiceInterface, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewRemoteClient(config.SuggestionConfig{ServiceURL: srv.URL, APIKey: "test-key"})
	return NewSuggestionService(client), srv
}

func TestGetSuggestionUsesRemoteResult(t *testing.T) {
	svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-suggestions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"suggestions": "` + "```json" + `\n{\"recommendedTimeSlot\":\"10:00 AM - 11:00 AM\",\"duration\":\"1 hours\",\"matchingVolunteerTypes\":[\"Education & Youth Development\"],\"compatibilityScore\":\"85\",\"timeOverlapScore\":\"45\",\"proximityScore\":\"20\",\"skillMatchScore\":\"20\",\"reasoning\":\"Strong match.\"}\n` + "```" + `"}`))
	})
	defer srv.Close()

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	require.NotNil(t, got)
	assert.Equal(t, "85", got.CompatibilityScore)
	assert.Equal(t, "Strong match.", got.Reasoning)
}

func TestGetSuggestionFallsBackOnServerError(t *testing.T) {
	svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	assert.Equal(t, ComputeFallback(testVolunteer, testEvent), got)
}

func TestGetSuggestionFallsBackOnMalformedBody(t *testing.T) {
	svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions": "not json at all"}`))
	})
	defer srv.Close()

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	assert.Equal(t, ComputeFallback(testVolunteer, testEvent), got)
}

func TestGetSuggestionFallsBackOnShapeMismatch(t *testing.T) {
	// Valid JSON that is missing required fields must be rejected, not
	// passed through.
	svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions": "{\"recommendedTimeSlot\":\"10:00 AM - 11:00 AM\"}"}`))
	})
	defer srv.Close()

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	assert.Equal(t, ComputeFallback(testVolunteer, testEvent), got)
}

func TestGetSuggestionFallsBackOnNonIntegerScores(t *testing.T) {
	svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions": "{\"recommendedTimeSlot\":\"slot\",\"duration\":\"1 hours\",\"matchingVolunteerTypes\":[],\"compatibilityScore\":\"high\",\"timeOverlapScore\":\"45\",\"proximityScore\":\"20\",\"skillMatchScore\":\"20\",\"reasoning\":\"ok\"}"}`))
	})
	defer srv.Close()

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	assert.Equal(t, ComputeFallback(testVolunteer, testEvent), got)
}

func TestGetSuggestionFallsBackOnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewRemoteClient(config.SuggestionConfig{ServiceURL: srv.URL})
	svc := NewSuggestionService(client)

	got := svc.GetSuggestion(context.Background(), testVolunteer, testEvent)

	assert.Equal(t, ComputeFallback(testVolunteer, testEvent), got)
}

func TestGetSuggestionNeverNil(t *testing.T) {
	client := NewRemoteClient(config.SuggestionConfig{})
	svc := NewSuggestionService(client)

	got := svc.GetSuggestion(context.Background(), dto.VolunteerData{}, dto.EventData{})

	require.NotNil(t, got)
	assert.Equal(t, "No time availability provided", got.RecommendedTimeSlot)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
