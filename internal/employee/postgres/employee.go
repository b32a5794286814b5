package postgres

import (
	"context"

	"gorm.io/gorm"

	employeeDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/employee"
	"github.com/alorahq/hr-portal/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

const profileQuery = `
SELECT
  e.id, e.full_name, e.email, e.gender, e.birth_place, e.birth_date,
  e.address, e.ktp_number, e.family_card_number, e.phone_number,
  e.company_id, c.company_name,
  e.department_id, d.department_name,
  e.position_id, p.position_name,
  e.job_level_id, jl.job_level_name,
  e.join_date, e.employment_status_id, es.employment_status_name,
  e.contract_end_date, e.education_level_id, el.education_level_name,
  e.school_name, e.religion_id, rel.religion_name,
  e.marital_status, e.bpjs_health_number, e.bpjs_employment_number,
  e.npwp_number, e.bank_id, b.bank_name, e.bank_account_number,
  e.emergency_contact, e.notes
FROM mst_employee e
LEFT JOIN mst_company c ON e.company_id = c.company_id
LEFT JOIN mst_department d ON e.department_id = d.department_id
LEFT JOIN mst_position p ON e.position_id = p.position_id
LEFT JOIN mst_job_level jl ON e.job_level_id = jl.job_level_id
LEFT JOIN mst_employment_status es ON e.employment_status_id = es.employment_status_id
LEFT JOIN mst_education_level el ON e.education_level_id = el.education_level_id
LEFT JOIN mst_religion rel ON e.religion_id = rel.religion_id
LEFT JOIN mst_bank b ON e.bank_id = b.bank_id
WHERE e.email = ? AND e.is_deleted = ?`

func (r *EmployeeRepository) GetProfileByEmail(ctx context.Context, email string) (*employee.Profile, error) {
	var profile employee.Profile
	result := r.db.WithContext(ctx).Raw(profileQuery, email, false).Scan(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &profile, nil
}

// UpdateProfileByEmail replaces every self-service field the DTO carries.
// A nil pointer clears the column, matching PUT semantics rather than PATCH.
func (r *EmployeeRepository) UpdateProfileByEmail(ctx context.Context, email string, dto *employee.UpdateProfileDTO) error {
	updates := map[string]interface{}{
		"full_name":              dto.FullName,
		"gender":                 dto.Gender,
		"birth_place":            dto.BirthPlace,
		"birth_date":             dto.BirthDate,
		"address":                dto.Address,
		"ktp_number":             dto.KTPNumber,
		"family_card_number":     dto.FamilyCardNumber,
		"phone_number":           dto.PhoneNumber,
		"company_id":             dto.CompanyID,
		"department_id":          dto.DepartmentID,
		"position_id":            dto.PositionID,
		"job_level_id":           dto.JobLevelID,
		"join_date":              dto.JoinDate,
		"employment_status_id":   dto.EmploymentStatusID,
		"contract_end_date":      dto.ContractEndDate,
		"education_level_id":     dto.EducationLevelID,
		"school_name":            dto.SchoolName,
		"religion_id":            dto.ReligionID,
		"marital_status":         dto.MaritalStatus,
		"bpjs_health_number":     dto.BPJSHealthNumber,
		"bpjs_employment_number": dto.BPJSEmploymentNumber,
		"npwp_number":            dto.NPWPNumber,
		"bank_id":                dto.BankID,
		"bank_account_number":    dto.BankAccountNumber,
		"emergency_contact":      dto.EmergencyContact,
		"notes":                  dto.Notes,
	}

	return r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Where("email = ? AND is_deleted = ?", email, false).
		Updates(updates).Error
}
