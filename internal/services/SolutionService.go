package services

import (
	"context"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/storage/interfaces"
)

type SolutionServiceInterface interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, contestID string) (string, bool, error)
	Save(ctx context.Context, contestID, url string) error
	Remove(ctx context.Context, contestID string) error
}

// SolutionService manages the contestId -> video url links. Last write wins.
type SolutionService struct {
	store  interfaces.KeyValueStore
	logger providers.Logger
}

func NewSolutionService(store interfaces.KeyValueStore, logger providers.Logger) SolutionServiceInterface {
	return &SolutionService{store: store, logger: logger}
}

func (s *SolutionService) GetAll(ctx context.Context) (map[string]string, error) {
	return s.store.GetAll(ctx, models.BucketSolutionLinks)
}

func (s *SolutionService) Get(ctx context.Context, contestID string) (string, bool, error) {
	if contestID == "" {
		return "", false, models.MissingInput("contest id")
	}
	return s.store.Get(ctx, models.BucketSolutionLinks, contestID)
}

func (s *SolutionService) Save(ctx context.Context, contestID, url string) error {
	if contestID == "" {
		return models.MissingInput("contest id")
	}
	if url == "" {
		return models.MissingInput("solution url")
	}
	if err := s.store.Set(ctx, models.BucketSolutionLinks, contestID, url); err != nil {
		return err
	}
	s.logger.Infof(providers.TypeApp, "Saved solution link for %s", contestID)
	return nil
}

func (s *SolutionService) Remove(ctx context.Context, contestID string) error {
	if contestID == "" {
		return models.MissingInput("contest id")
	}
	if err := s.store.Remove(ctx, models.BucketSolutionLinks, contestID); err != nil {
		return err
	}
	s.logger.Infof(providers.TypeApp, "Removed solution link for %s", contestID)
	return nil
}
