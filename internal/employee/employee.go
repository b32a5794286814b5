package employee

import "time"

// Profile is the joined view of an employee row with its lookup names
// resolved. Nullable columns stay pointers so the client can tell unset
// from empty.
type Profile struct {
	ID                   int64      `json:"id" gorm:"column:id"`
	FullName             string     `json:"full_name" gorm:"column:full_name"`
	Email                string     `json:"email" gorm:"column:email"`
	Gender               *string    `json:"gender" gorm:"column:gender"`
	BirthPlace           *string    `json:"birth_place" gorm:"column:birth_place"`
	BirthDate            *time.Time `json:"birth_date" gorm:"column:birth_date"`
	Address              *string    `json:"address" gorm:"column:address"`
	KTPNumber            *string    `json:"ktp_number" gorm:"column:ktp_number"`
	FamilyCardNumber     *string    `json:"family_card_number" gorm:"column:family_card_number"`
	PhoneNumber          *string    `json:"phone_number" gorm:"column:phone_number"`
	CompanyID            *int64     `json:"company_id" gorm:"column:company_id"`
	CompanyName          *string    `json:"company_name" gorm:"column:company_name"`
	DepartmentID         *int64     `json:"department_id" gorm:"column:department_id"`
	DepartmentName       *string    `json:"department_name" gorm:"column:department_name"`
	PositionID           *int64     `json:"position_id" gorm:"column:position_id"`
	PositionName         *string    `json:"position_name" gorm:"column:position_name"`
	JobLevelID           *int64     `json:"job_level_id" gorm:"column:job_level_id"`
	JobLevelName         *string    `json:"job_level_name" gorm:"column:job_level_name"`
	JoinDate             *time.Time `json:"join_date" gorm:"column:join_date"`
	EmploymentStatusID   *int64     `json:"employment_status_id" gorm:"column:employment_status_id"`
	EmploymentStatusName *string    `json:"employment_status_name" gorm:"column:employment_status_name"`
	ContractEndDate      *time.Time `json:"contract_end_date" gorm:"column:contract_end_date"`
	EducationLevelID     *int64     `json:"education_level_id" gorm:"column:education_level_id"`
	EducationLevelName   *string    `json:"education_level_name" gorm:"column:education_level_name"`
	SchoolName           *string    `json:"school_name" gorm:"column:school_name"`
	ReligionID           *int64     `json:"religion_id" gorm:"column:religion_id"`
	ReligionName         *string    `json:"religion_name" gorm:"column:religion_name"`
	MaritalStatus        *string    `json:"marital_status" gorm:"column:marital_status"`
	BPJSHealthNumber     *string    `json:"bpjs_health_number" gorm:"column:bpjs_health_number"`
	BPJSEmploymentNumber *string    `json:"bpjs_employment_number" gorm:"column:bpjs_employment_number"`
	NPWPNumber           *string    `json:"npwp_number" gorm:"column:npwp_number"`
	BankID               *int64     `json:"bank_id" gorm:"column:bank_id"`
	BankName             *string    `json:"bank_name" gorm:"column:bank_name"`
	BankAccountNumber    *string    `json:"bank_account_number" gorm:"column:bank_account_number"`
	EmergencyContact     *string    `json:"emergency_contact" gorm:"column:emergency_contact"`
	Notes                *string    `json:"notes" gorm:"column:notes"`
}
