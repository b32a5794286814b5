package satisfaction

import (
	"time"

	errors "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/core/common/validation"
)

// SubmitSurveyDTO mirrors the survey form. The sixteen likert answers are
// nullable: a skipped question arrives as null and is stored as NULL.
type SubmitSurveyDTO struct {
	CompanyID           *int64   `json:"company_id"`
	DepartmentText      string   `json:"department_text"`
	JobLevel            string   `json:"job_level"`
	Tenure              string   `json:"tenure"`
	OverallSatisfaction string   `json:"overall_satisfaction"`
	MainFactors         []string `json:"main_factors"`

	C1  *int `json:"c1"`
	C2  *int `json:"c2"`
	C3  *int `json:"c3"`
	C4  *int `json:"c4"`
	C5  *int `json:"c5"`
	C6  *int `json:"c6"`
	C7  *int `json:"c7"`
	C8  *int `json:"c8"`
	C9  *int `json:"c9"`
	C10 *int `json:"c10"`
	C11 *int `json:"c11"`
	C12 *int `json:"c12"`
	C13 *int `json:"c13"`
	C14 *int `json:"c14"`
	C15 *int `json:"c15"`
	C16 *int `json:"c16"`

	D1 *string `json:"d1"`
	D2 *string `json:"d2"`
	D3 *string `json:"d3"`
}

func (d *SubmitSurveyDTO) likertFields() [LikertFieldCount]*int {
	return [LikertFieldCount]*int{
		d.C1, d.C2, d.C3, d.C4, d.C5, d.C6, d.C7, d.C8,
		d.C9, d.C10, d.C11, d.C12, d.C13, d.C14, d.C15, d.C16,
	}
}

var likertFieldNames = [LikertFieldCount]string{
	"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8",
	"c9", "c10", "c11", "c12", "c13", "c14", "c15", "c16",
}

// Validate enforces the required general-information fields and the
// likert range on every answered aspect question.
func (d *SubmitSurveyDTO) Validate() *errors.AppError {
	v := validation.NewValidator()

	v.Field("department_text", d.DepartmentText).Required()
	v.Field("job_level", d.JobLevel).Required()
	v.Field("tenure", d.Tenure).Required()
	v.Field("overall_satisfaction", d.OverallSatisfaction).Required()

	for i, value := range d.likertFields() {
		v.Field(likertFieldNames[i], value).
			IntRangeOrNil(LikertMin, LikertMax, errors.ErrCodeInvalidLikert)
	}

	return v.Validate()
}

type StatusResponse struct {
	SurveyKey    string     `json:"surveyKey"`
	HasSubmitted bool       `json:"hasSubmitted"`
	SubmittedAt  *time.Time `json:"submittedAt"`
}

type SubmitResponse struct {
	Message   string `json:"message"`
	SurveyKey string `json:"surveyKey"`
}

// CompanyOption and DepartmentOption are the live lookup rows served with
// the survey master data.
type CompanyOption struct {
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name"`
}

type DepartmentOption struct {
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

type MasterDataResponse struct {
	Companies          []CompanyOption    `json:"companies"`
	Departments        []DepartmentOption `json:"departments"`
	JobLevels          []Option           `json:"jobLevels"`
	Tenures            []Option           `json:"tenures"`
	SatisfactionLevels []Option           `json:"satisfactionLevels"`
	MainFactors        []Option           `json:"mainFactors"`
}
