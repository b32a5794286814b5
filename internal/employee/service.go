package employee

import (
	"context"
	"log/slog"

	internal "github.com/alorahq/hr-portal/internal"
)

type RepositoryAPI interface {
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
	UpdateProfileByEmail(ctx context.Context, email string, dto *UpdateProfileDTO) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetProfile(ctx context.Context, email string) (*Profile, error) {
	profile, err := s.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to load profile", "error", err)
		return nil, internal.NewInternalError("failed to load profile", err)
	}
	if profile == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, email string, dto *UpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to load profile before update", "error", err)
		return nil, internal.NewInternalError("failed to update profile", err)
	}
	if existing == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if err := s.repo.UpdateProfileByEmail(ctx, email, dto); err != nil {
		s.logger.Error("failed to update profile", "error", err)
		return nil, internal.NewInternalError("failed to update profile", err)
	}

	return s.GetProfile(ctx, email)
}
