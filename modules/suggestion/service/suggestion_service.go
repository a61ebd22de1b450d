package service

import (
	"context"

	"volunteerhub/core/logger"
	"volunteerhub/modules/suggestion/dto"
)

// SuggestionServiceInterface is the single entry point the review workflow
// uses to obtain a scheduling suggestion.
type SuggestionServiceInterface interface {
	GetSuggestion(ctx context.Context, volunteer dto.VolunteerData, event dto.EventData) *dto.SuggestionResult
}

type SuggestionService struct {
	client RemoteClient
}

func NewSuggestionService(client RemoteClient) SuggestionServiceInterface {
	return &SuggestionService{client: client}
}

// GetSuggestion asks the remote generative service first and falls back to
// the deterministic local pipeline on any failure. It never returns an
// error: an advisory zero-score suggestion is preferred over blocking the
// reviewer's workflow.
func (s *SuggestionService) GetSuggestion(ctx context.Context, volunteer dto.VolunteerData, event dto.EventData) *dto.SuggestionResult {
	result, err := s.client.GenerateSuggestion(ctx, &dto.SuggestRequest{
		VolunteerData: volunteer,
		EventData:     event,
	})
	if err != nil {
		logger.Info("SuggestionService:GetSuggestion:Fallback", "reason", err.Error(), "event_id", event.EventID)
		return ComputeFallback(volunteer, event)
	}

	return result
}
