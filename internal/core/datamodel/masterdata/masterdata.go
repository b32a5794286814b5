package masterdata

// Lookup tables backing the employee profile and survey dropdowns. All of
// them share the is_active flag convention; inactive rows stay out of every
// listing.

type Company struct {
	ID       int64  `gorm:"primaryKey;column:company_id"`
	Name     string `gorm:"column:company_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (Company) TableName() string {
	return "mst_company"
}

type Department struct {
	ID       int64  `gorm:"primaryKey;column:department_id"`
	Name     string `gorm:"column:department_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (Department) TableName() string {
	return "mst_department"
}

type Position struct {
	ID       int64  `gorm:"primaryKey;column:position_id"`
	Name     string `gorm:"column:position_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (Position) TableName() string {
	return "mst_position"
}

type JobLevel struct {
	ID       int64  `gorm:"primaryKey;column:job_level_id"`
	Name     string `gorm:"column:job_level_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (JobLevel) TableName() string {
	return "mst_job_level"
}

type EmploymentStatus struct {
	ID       int64  `gorm:"primaryKey;column:employment_status_id"`
	Name     string `gorm:"column:employment_status_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (EmploymentStatus) TableName() string {
	return "mst_employment_status"
}

type EducationLevel struct {
	ID       int64  `gorm:"primaryKey;column:education_level_id"`
	Name     string `gorm:"column:education_level_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (EducationLevel) TableName() string {
	return "mst_education_level"
}

type Religion struct {
	ID       int64  `gorm:"primaryKey;column:religion_id"`
	Name     string `gorm:"column:religion_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (Religion) TableName() string {
	return "mst_religion"
}

type Bank struct {
	ID       int64  `gorm:"primaryKey;column:bank_id"`
	Name     string `gorm:"column:bank_name;not null"`
	IsActive bool   `gorm:"column:is_active;default:true"`
}

func (Bank) TableName() string {
	return "mst_bank"
}
