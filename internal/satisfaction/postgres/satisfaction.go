package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	internal "github.com/alorahq/hr-portal/internal"
	satisfactionDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/satisfaction"
	"github.com/alorahq/hr-portal/internal/satisfaction"
)

// SatisfactionRepository implements satisfaction.Repository using GORM.
type SatisfactionRepository struct {
	db *gorm.DB
}

func NewSatisfactionRepository(db *gorm.DB) satisfaction.Repository {
	return &SatisfactionRepository{db: db}
}

func (r *SatisfactionRepository) GetCompletedAudit(ctx context.Context, employeeID int64, surveyKey string) (*satisfaction.AuditRecord, error) {
	var row satisfactionDatamodel.Audit
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND survey_key = ? AND status = ?",
			employeeID, surveyKey, satisfactionDatamodel.StatusCompleted).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &satisfaction.AuditRecord{ID: row.ID, SubmittedAt: row.SubmittedAt}, nil
}

// CreateSubmission writes the anonymous response and the identifying audit
// row as one atomic unit. The in-transaction duplicate check handles the
// sequential case; the unique index on (employee_id, survey_key, status)
// settles concurrent races, which surface here as ErrDuplicateSubmission.
// gorm.Transaction rolls back on any returned error or panic, so a
// response row without its audit row is never observable.
func (r *SatisfactionRepository) CreateSubmission(ctx context.Context, sub *satisfaction.Submission) error {
	mainFactors := sub.MainFactors
	if mainFactors == nil {
		mainFactors = []string{}
	}
	factorsJSON, err := json.Marshal(mainFactors)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&satisfactionDatamodel.Audit{}).
			Where("employee_id = ? AND survey_key = ? AND status = ?",
				sub.EmployeeID, sub.SurveyKey, satisfactionDatamodel.StatusCompleted).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return internal.ErrDuplicateSubmission
		}

		response := satisfactionDatamodel.Response{
			CompanyID:           sub.CompanyID,
			DepartmentText:      sub.DepartmentText,
			JobLevel:            sub.JobLevel,
			Tenure:              sub.Tenure,
			OverallSatisfaction: sub.OverallSatisfaction,
			MainFactors:         string(factorsJSON),
			C1:                  sub.Likert[0],
			C2:                  sub.Likert[1],
			C3:                  sub.Likert[2],
			C4:                  sub.Likert[3],
			C5:                  sub.Likert[4],
			C6:                  sub.Likert[5],
			C7:                  sub.Likert[6],
			C8:                  sub.Likert[7],
			C9:                  sub.Likert[8],
			C10:                 sub.Likert[9],
			C11:                 sub.Likert[10],
			C12:                 sub.Likert[11],
			C13:                 sub.Likert[12],
			C14:                 sub.Likert[13],
			C15:                 sub.Likert[14],
			C16:                 sub.Likert[15],
			D1:                  sub.D1,
			D2:                  sub.D2,
			D3:                  sub.D3,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		audit := satisfactionDatamodel.Audit{
			EmployeeID:     sub.EmployeeID,
			Email:          sub.Email,
			SurveyKey:      sub.SurveyKey,
			SatisfactionID: response.ID,
			Status:         satisfactionDatamodel.StatusCompleted,
		}
		if err := tx.Create(&audit).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return internal.ErrDuplicateSubmission
			}
			return err
		}

		return nil
	})
}

// averageRow receives the per-dimension AVG aggregates; a nil field means
// every row left that question unanswered.
type averageRow struct {
	C1  *float64 `gorm:"column:c1"`
	C2  *float64 `gorm:"column:c2"`
	C3  *float64 `gorm:"column:c3"`
	C4  *float64 `gorm:"column:c4"`
	C5  *float64 `gorm:"column:c5"`
	C6  *float64 `gorm:"column:c6"`
	C7  *float64 `gorm:"column:c7"`
	C8  *float64 `gorm:"column:c8"`
	C9  *float64 `gorm:"column:c9"`
	C10 *float64 `gorm:"column:c10"`
	C11 *float64 `gorm:"column:c11"`
	C12 *float64 `gorm:"column:c12"`
	C13 *float64 `gorm:"column:c13"`
	C14 *float64 `gorm:"column:c14"`
	C15 *float64 `gorm:"column:c15"`
	C16 *float64 `gorm:"column:c16"`
}

const averagesQuery = `
SELECT
  AVG(c1_semangat_mulai_hari) AS c1,
  AVG(c2_pekerjaan_bermakna) AS c2,
  AVG(c3_berenergi_antusias) AS c3,
  AVG(c4_fokus_terlibat) AS c4,
  AVG(c5_bangga_pekerjaan) AS c5,
  AVG(c6_gaji_sesuai_kontribusi) AS c6,
  AVG(c7_tunjangan_mendukung) AS c7,
  AVG(c8_lingkungan_nyaman) AS c8,
  AVG(c9_rekan_kerja_suportif) AS c9,
  AVG(c10_atasan_arahan_dukung) AS c10,
  AVG(c11_peluang_berkembang_belajar) AS c11,
  AVG(c12_keterikatan_emosional) AS c12,
  AVG(c13_bangga_bagian_perusahaan) AS c13,
  AVG(c14_perusahaan_berarti) AS c14,
  AVG(c15_ingin_tetap_bekerja) AS c15,
  AVG(c16_tanggungjawab_berkontribusi) AS c16
FROM tr_employee_satisfaction s
JOIN tr_employee_satisfaction_audit a ON s.id = a.satisfaction_id
WHERE a.survey_key = ? AND a.status = ?`

// Stats is a pure aggregation over completed submissions for one period;
// AVG ignores NULL answers by SQL semantics.
func (r *SatisfactionRepository) Stats(ctx context.Context, surveyKey string) (*satisfaction.Stats, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&satisfactionDatamodel.Audit{}).
		Where("survey_key = ? AND status = ?", surveyKey, satisfactionDatamodel.StatusCompleted).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var distribution []satisfaction.DistributionEntry
	if err := db.Raw(`
SELECT s.overall_satisfaction, COUNT(*) AS count
FROM tr_employee_satisfaction s
JOIN tr_employee_satisfaction_audit a ON s.id = a.satisfaction_id
WHERE a.survey_key = ? AND a.status = ?
GROUP BY s.overall_satisfaction`,
		surveyKey, satisfactionDatamodel.StatusCompleted).
		Scan(&distribution).Error; err != nil {
		return nil, err
	}

	var averages averageRow
	if err := db.Raw(averagesQuery, surveyKey, satisfactionDatamodel.StatusCompleted).
		Scan(&averages).Error; err != nil {
		return nil, err
	}

	return &satisfaction.Stats{
		SurveyKey:                surveyKey,
		TotalSubmissions:         total,
		SatisfactionDistribution: distribution,
		AverageScores: map[string]*float64{
			"c1": averages.C1, "c2": averages.C2, "c3": averages.C3, "c4": averages.C4,
			"c5": averages.C5, "c6": averages.C6, "c7": averages.C7, "c8": averages.C8,
			"c9": averages.C9, "c10": averages.C10, "c11": averages.C11, "c12": averages.C12,
			"c13": averages.C13, "c14": averages.C14, "c15": averages.C15, "c16": averages.C16,
		},
	}, nil
}
