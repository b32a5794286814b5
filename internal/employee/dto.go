package employee

import (
	"time"

	internal "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/core/common/validation"
)

// UpdateProfileDTO carries the self-service editable profile fields. Lookup
// assignments travel as ids; the joined names are read-only output.
type UpdateProfileDTO struct {
	FullName             string     `json:"full_name"`
	Gender               *string    `json:"gender"`
	BirthPlace           *string    `json:"birth_place"`
	BirthDate            *time.Time `json:"birth_date"`
	Address              *string    `json:"address"`
	KTPNumber            *string    `json:"ktp_number"`
	FamilyCardNumber     *string    `json:"family_card_number"`
	PhoneNumber          *string    `json:"phone_number"`
	CompanyID            *int64     `json:"company_id"`
	DepartmentID         *int64     `json:"department_id"`
	PositionID           *int64     `json:"position_id"`
	JobLevelID           *int64     `json:"job_level_id"`
	JoinDate             *time.Time `json:"join_date"`
	EmploymentStatusID   *int64     `json:"employment_status_id"`
	ContractEndDate      *time.Time `json:"contract_end_date"`
	EducationLevelID     *int64     `json:"education_level_id"`
	SchoolName           *string    `json:"school_name"`
	ReligionID           *int64     `json:"religion_id"`
	MaritalStatus        *string    `json:"marital_status"`
	BPJSHealthNumber     *string    `json:"bpjs_health_number"`
	BPJSEmploymentNumber *string    `json:"bpjs_employment_number"`
	NPWPNumber           *string    `json:"npwp_number"`
	BankID               *int64     `json:"bank_id"`
	BankAccountNumber    *string    `json:"bank_account_number"`
	EmergencyContact     *string    `json:"emergency_contact"`
	Notes                *string    `json:"notes"`
}

func (d *UpdateProfileDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("full_name", d.FullName).Required().MaxLength(255)
	v.Field("phone_number", d.PhoneNumber).MaxLength(32)
	v.Field("ktp_number", d.KTPNumber).MaxLength(32)
	v.Field("npwp_number", d.NPWPNumber).MaxLength(32)
	return v.Validate()
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}
