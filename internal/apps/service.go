package apps

import (
	"context"
	"log/slog"

	"github.com/alorahq/hr-portal/internal/auth"
	appDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/app"
)

type RepositoryAPI interface {
	ActiveApps(ctx context.Context) ([]*appDatamodel.App, error)
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

// AppsForRole lists the active portal tiles the given role may see. Each
// tile carries its own minimum role, so the listing is a per-row rank gate
// rather than a single endpoint-level policy.
func (s *Service) AppsForRole(ctx context.Context, role auth.Role) ([]AppEntry, error) {
	rows, err := s.repo.ActiveApps(ctx)
	if err != nil {
		s.logger.Error("failed to load apps", "error", err)
		return nil, err
	}

	entries := make([]AppEntry, 0, len(rows))
	for _, row := range rows {
		gate := auth.MinRole(auth.ParseRole(row.MinRole))
		if !gate.Allows(role) {
			continue
		}
		entries = append(entries, AppEntry{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Href:        row.Href,
			SortOrder:   row.SortOrder,
		})
	}

	return entries, nil
}
