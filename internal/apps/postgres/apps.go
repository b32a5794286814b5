package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/alorahq/hr-portal/internal/apps"
	appDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/app"
)

type AppsRepository struct {
	db *gorm.DB
}

func NewAppsRepository(db *gorm.DB) apps.RepositoryAPI {
	return &AppsRepository{db: db}
}

func (r *AppsRepository) ActiveApps(ctx context.Context) ([]*appDatamodel.App, error) {
	var rows []*appDatamodel.App
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error
	return rows, err
}
