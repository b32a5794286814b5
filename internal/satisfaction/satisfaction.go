package satisfaction

import (
	"fmt"
	"time"
)

// SurveyKey derives the period key for an instant: "2025-Q1" for any time
// in Jan–Mar 2025. Pure and deterministic; the server's local timezone
// decides which quarter a boundary instant falls into.
func SurveyKey(now time.Time) string {
	quarter := (int(now.Month()) + 2) / 3
	return fmt.Sprintf("%d-Q%d", now.Year(), quarter)
}

// LikertFieldCount is the number of scored aspect questions (c1..c16).
const LikertFieldCount = 16

const (
	LikertMin = 1
	LikertMax = 5
)

// Option is a value/label pair for the survey form dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Static option lists served with the survey master data. Labels are kept
// in Bahasa Indonesia as the form presents them.
var (
	JobLevelOptions = []Option{
		{Value: "Staff", Label: "Staff"},
		{Value: "SPV", Label: "Supervisor"},
		{Value: "Manager", Label: "Manager"},
		{Value: "Lainnya", Label: "Lainnya"},
	}

	TenureOptions = []Option{
		{Value: "< 3 Bulan", Label: "< 3 Bulan"},
		{Value: "3-6 Bulan", Label: "3–6 Bulan"},
		{Value: "6-12 Bulan", Label: "6–12 Bulan"},
		{Value: "> 1 Tahun", Label: "> 1 Tahun"},
	}

	SatisfactionLevelOptions = []Option{
		{Value: "Sangat Puas", Label: "Sangat Puas"},
		{Value: "Puas", Label: "Puas"},
		{Value: "Netral", Label: "Netral"},
		{Value: "Kurang Puas", Label: "Kurang Puas"},
		{Value: "Sangat Tidak Puas", Label: "Sangat Tidak Puas"},
	}

	MainFactorOptions = []Option{
		{Value: "Gaji & kompensasi", Label: "Gaji & kompensasi"},
		{Value: "Tunjangan & fasilitas", Label: "Tunjangan & fasilitas"},
		{Value: "Beban kerja", Label: "Beban kerja"},
		{Value: "Lingkungan kerja", Label: "Lingkungan kerja"},
		{Value: "Atasan langsung", Label: "Atasan langsung"},
		{Value: "Kebijakan manajemen", Label: "Kebijakan manajemen"},
		{Value: "Peluang pengembangan karier", Label: "Peluang pengembangan karier"},
	}
)

// Submission is what the repository persists: the anonymized answers plus
// the identity fields that go only into the audit row.
type Submission struct {
	EmployeeID int64
	Email      string
	SurveyKey  string

	CompanyID           *int64
	DepartmentText      string
	JobLevel            string
	Tenure              string
	OverallSatisfaction string
	MainFactors         []string
	Likert              [LikertFieldCount]*int
	D1                  *string
	D2                  *string
	D3                  *string
}

// AuditRecord is the completed-submission marker for one employee/period.
type AuditRecord struct {
	ID          int64
	SubmittedAt time.Time
}

// DistributionEntry is one bucket of the overall-satisfaction histogram.
type DistributionEntry struct {
	OverallSatisfaction string `json:"overall_satisfaction"`
	Count               int64  `json:"count"`
}

// Stats aggregates one period. AverageScores holds c1..c16; a nil entry
// means no row answered that dimension.
type Stats struct {
	SurveyKey                string              `json:"surveyKey"`
	TotalSubmissions         int64               `json:"totalSubmissions"`
	SatisfactionDistribution []DistributionEntry `json:"satisfactionDistribution"`
	AverageScores            map[string]*float64 `json:"averageScores"`
}
