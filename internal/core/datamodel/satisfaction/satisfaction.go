package satisfaction

import "time"

// Response is the anonymized answer set. It deliberately carries no
// reference to the submitting employee; the audit row is the only link,
// and that link points at the response id, never the other way around.
type Response struct {
	ID                  int64     `gorm:"primaryKey"`
	CompanyID           *int64    `gorm:"column:company_id"`
	DepartmentText      string    `gorm:"column:department_text;not null"`
	JobLevel            string    `gorm:"column:job_level;not null"`
	Tenure              string    `gorm:"column:tenure;not null"`
	OverallSatisfaction string    `gorm:"column:overall_satisfaction;not null"`
	MainFactors         string    `gorm:"column:main_factors"`
	C1                  *int      `gorm:"column:c1_semangat_mulai_hari"`
	C2                  *int      `gorm:"column:c2_pekerjaan_bermakna"`
	C3                  *int      `gorm:"column:c3_berenergi_antusias"`
	C4                  *int      `gorm:"column:c4_fokus_terlibat"`
	C5                  *int      `gorm:"column:c5_bangga_pekerjaan"`
	C6                  *int      `gorm:"column:c6_gaji_sesuai_kontribusi"`
	C7                  *int      `gorm:"column:c7_tunjangan_mendukung"`
	C8                  *int      `gorm:"column:c8_lingkungan_nyaman"`
	C9                  *int      `gorm:"column:c9_rekan_kerja_suportif"`
	C10                 *int      `gorm:"column:c10_atasan_arahan_dukung"`
	C11                 *int      `gorm:"column:c11_peluang_berkembang_belajar"`
	C12                 *int      `gorm:"column:c12_keterikatan_emosional"`
	C13                 *int      `gorm:"column:c13_bangga_bagian_perusahaan"`
	C14                 *int      `gorm:"column:c14_perusahaan_berarti"`
	C15                 *int      `gorm:"column:c15_ingin_tetap_bekerja"`
	C16                 *int      `gorm:"column:c16_tanggungjawab_berkontribusi"`
	D1                  *string   `gorm:"column:d1_kurang_nyaman_atau_capek"`
	D2                  *string   `gorm:"column:d2_bikin_betah_senang_termotivasi"`
	D3                  *string   `gorm:"column:d3_yang_perlu_dibenahi_cepat"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Response) TableName() string {
	return "tr_employee_satisfaction"
}

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
)

// Audit links an identified employee to an anonymous response for one
// survey period. The composite unique index is what makes the
// check-then-insert submission race-free: a concurrent duplicate loses at
// the storage layer, not in application code.
type Audit struct {
	ID             int64     `gorm:"primaryKey"`
	EmployeeID     int64     `gorm:"column:employee_id;not null;uniqueIndex:ux_satisfaction_audit_period"`
	Email          string    `gorm:"column:email;not null"`
	SurveyKey      string    `gorm:"column:survey_key;not null;uniqueIndex:ux_satisfaction_audit_period"`
	SatisfactionID int64     `gorm:"column:satisfaction_id;not null"`
	Status         string    `gorm:"column:status;not null;default:COMPLETED;uniqueIndex:ux_satisfaction_audit_period"`
	SubmittedAt    time.Time `gorm:"column:submitted_at;autoCreateTime"`
}

func (Audit) TableName() string {
	return "tr_employee_satisfaction_audit"
}
