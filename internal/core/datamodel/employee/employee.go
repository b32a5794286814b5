package employee

import "time"

type Employee struct {
	ID                   int64      `gorm:"primaryKey"`
	FullName             string     `gorm:"column:full_name;not null"`
	Email                string     `gorm:"column:email;uniqueIndex;not null"`
	Gender               *string    `gorm:"column:gender"`
	BirthPlace           *string    `gorm:"column:birth_place"`
	BirthDate            *time.Time `gorm:"column:birth_date"`
	Address              *string    `gorm:"column:address"`
	KTPNumber            *string    `gorm:"column:ktp_number"`
	FamilyCardNumber     *string    `gorm:"column:family_card_number"`
	PhoneNumber          *string    `gorm:"column:phone_number"`
	CompanyID            *int64     `gorm:"column:company_id"`
	JobLevelID           *int64     `gorm:"column:job_level_id"`
	PositionID           *int64     `gorm:"column:position_id"`
	DepartmentID         *int64     `gorm:"column:department_id"`
	JoinDate             *time.Time `gorm:"column:join_date"`
	EmploymentStatusID   *int64     `gorm:"column:employment_status_id"`
	ContractEndDate      *time.Time `gorm:"column:contract_end_date"`
	EducationLevelID     *int64     `gorm:"column:education_level_id"`
	SchoolName           *string    `gorm:"column:school_name"`
	ReligionID           *int64     `gorm:"column:religion_id"`
	MaritalStatus        *string    `gorm:"column:marital_status"`
	BPJSHealthNumber     *string    `gorm:"column:bpjs_health_number"`
	BPJSEmploymentNumber *string    `gorm:"column:bpjs_employment_number"`
	NPWPNumber           *string    `gorm:"column:npwp_number"`
	BankID               *int64     `gorm:"column:bank_id"`
	BankAccountNumber    *string    `gorm:"column:bank_account_number"`
	EmergencyContact     *string    `gorm:"column:emergency_contact"`
	Notes                *string    `gorm:"column:notes"`
	IsDeleted            bool       `gorm:"column:is_deleted;default:false"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "mst_employee"
}
