package masterdata

import (
	"context"
	"log/slog"

	"github.com/alorahq/hr-portal/internal/satisfaction"
)

type RepositoryAPI interface {
	ActiveLookups(ctx context.Context) (*Lookups, error)
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

func (s *Service) GetLookups(ctx context.Context) (*Lookups, error) {
	lookups, err := s.repo.ActiveLookups(ctx)
	if err != nil {
		s.logger.Error("failed to load lookup tables", "error", err)
		return nil, err
	}
	return lookups, nil
}

// ActiveCompanies and ActiveDepartments let the service double as the
// survey form's lookup provider.
func (s *Service) ActiveCompanies(ctx context.Context) ([]satisfaction.CompanyOption, error) {
	lookups, err := s.repo.ActiveLookups(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]satisfaction.CompanyOption, 0, len(lookups.Companies))
	for _, item := range lookups.Companies {
		options = append(options, satisfaction.CompanyOption{
			CompanyID:   item.ID,
			CompanyName: item.Name,
		})
	}
	return options, nil
}

func (s *Service) ActiveDepartments(ctx context.Context) ([]satisfaction.DepartmentOption, error) {
	lookups, err := s.repo.ActiveLookups(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]satisfaction.DepartmentOption, 0, len(lookups.Departments))
	for _, item := range lookups.Departments {
		options = append(options, satisfaction.DepartmentOption{
			DepartmentID:   item.ID,
			DepartmentName: item.Name,
		})
	}
	return options, nil
}
