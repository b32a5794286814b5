package postgres

import (
	"context"

	"gorm.io/gorm"

	masterDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/masterdata"
	"github.com/alorahq/hr-portal/internal/masterdata"
)

type MasterDataRepository struct {
	db *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) masterdata.RepositoryAPI {
	return &MasterDataRepository{db: db}
}

func (r *MasterDataRepository) ActiveLookups(ctx context.Context) (*masterdata.Lookups, error) {
	db := r.db.WithContext(ctx)
	lookups := &masterdata.Lookups{}

	var companies []masterDatamodel.Company
	if err := db.Where("is_active = ?", true).Order("company_name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	for _, row := range companies {
		lookups.Companies = append(lookups.Companies, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var departments []masterDatamodel.Department
	if err := db.Where("is_active = ?", true).Order("department_name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	for _, row := range departments {
		lookups.Departments = append(lookups.Departments, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var positions []masterDatamodel.Position
	if err := db.Where("is_active = ?", true).Order("position_name ASC").Find(&positions).Error; err != nil {
		return nil, err
	}
	for _, row := range positions {
		lookups.Positions = append(lookups.Positions, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var jobLevels []masterDatamodel.JobLevel
	if err := db.Where("is_active = ?", true).Order("job_level_id ASC").Find(&jobLevels).Error; err != nil {
		return nil, err
	}
	for _, row := range jobLevels {
		lookups.JobLevels = append(lookups.JobLevels, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var statuses []masterDatamodel.EmploymentStatus
	if err := db.Where("is_active = ?", true).Order("employment_status_id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	for _, row := range statuses {
		lookups.EmploymentStatuses = append(lookups.EmploymentStatuses, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var educations []masterDatamodel.EducationLevel
	if err := db.Where("is_active = ?", true).Order("education_level_id ASC").Find(&educations).Error; err != nil {
		return nil, err
	}
	for _, row := range educations {
		lookups.EducationLevels = append(lookups.EducationLevels, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var religions []masterDatamodel.Religion
	if err := db.Where("is_active = ?", true).Order("religion_id ASC").Find(&religions).Error; err != nil {
		return nil, err
	}
	for _, row := range religions {
		lookups.Religions = append(lookups.Religions, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	var banks []masterDatamodel.Bank
	if err := db.Where("is_active = ?", true).Order("bank_name ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	for _, row := range banks {
		lookups.Banks = append(lookups.Banks, masterdata.LookupItem{ID: row.ID, Name: row.Name})
	}

	return lookups, nil
}
