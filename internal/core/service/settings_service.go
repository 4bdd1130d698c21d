package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/internal/core/ports"
)

// SettingsService serves and updates per-category settings documents.
// Reads go through the cache; updates validate the typed schema, persist
// to the repository and invalidate the cached copy.
type SettingsService struct {
	repo     ports.SettingsRepository
	cache    ports.SettingsCache
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, cache ports.SettingsCache, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *SettingsService) Get(ctx context.Context, category string) (domain.Settings, error) {
	settings, err := domain.DefaultSettings(category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		blob, err := s.cache.Get(ctx, category)
		if err != nil {
			// Cache trouble must not take settings reads down.
			s.logger.Warn().Err(err).Str("category", category).Msg("settings cache read failed")
		} else if blob != nil {
			if err := json.Unmarshal(blob, settings); err == nil {
				return settings, nil
			}
			s.logger.Warn().Str("category", category).Msg("discarding undecodable cached settings")
		}
	}

	if err := s.repo.Get(ctx, category, settings); err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			// Nothing saved yet: serve platform defaults.
			return settings, nil
		}
		return nil, fmt.Errorf("load settings %q: %w", category, err)
	}

	s.cachePut(ctx, category, settings)
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, category string, payload []byte) (domain.Settings, error) {
	settings, err := domain.DefaultSettings(category)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSettingsPayload, err)
	}
	if err := s.validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSettingsPayload, err)
	}

	settings.Touch(time.Now().UTC())
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings %q: %w", category, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, category); err != nil {
			s.logger.Warn().Err(err).Str("category", category).Msg("settings cache invalidation failed")
		}
	}

	s.logger.Info().Str("category", category).Msg("settings updated")
	return settings, nil
}

func (s *SettingsService) cachePut(ctx context.Context, category string, settings domain.Settings) {
	if s.cache == nil {
		return
	}
	blob, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, category, blob); err != nil {
		s.logger.Warn().Err(err).Str("category", category).Msg("settings cache write failed")
	}
}
