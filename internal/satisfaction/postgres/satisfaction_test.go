package postgres_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	internal "github.com/alorahq/hr-portal/internal"
	satisfactionDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/satisfaction"
	"github.com/alorahq/hr-portal/internal/satisfaction"
	satisfactionPostgres "github.com/alorahq/hr-portal/internal/satisfaction/postgres"
)

func TestSatisfactionPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Satisfaction Postgres Suite")
}

var _ = Describe("Satisfaction Repository", func() {
	var (
		db   *gorm.DB
		repo satisfaction.Repository
		ctx  context.Context
	)

	newSubmission := func(employeeID int64, surveyKey, overall string) *satisfaction.Submission {
		four := 4
		return &satisfaction.Submission{
			EmployeeID:          employeeID,
			Email:               "someone@alora.id",
			SurveyKey:           surveyKey,
			DepartmentText:      "Engineering",
			JobLevel:            "Staff",
			Tenure:              "1-3 tahun",
			OverallSatisfaction: overall,
			MainFactors:         []string{"Gaji", "Lingkungan kerja"},
			Likert:              [satisfaction.LikertFieldCount]*int{&four},
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&satisfactionDatamodel.Response{}, &satisfactionDatamodel.Audit{})
		Expect(err).NotTo(HaveOccurred())

		repo = satisfactionPostgres.NewSatisfactionRepository(db)
		ctx = context.Background()
	})

	Describe("CreateSubmission", func() {
		It("should write the response and audit rows together", func() {
			err := repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))
			Expect(err).NotTo(HaveOccurred())

			var responseCount, auditCount int64
			db.Model(&satisfactionDatamodel.Response{}).Count(&responseCount)
			db.Model(&satisfactionDatamodel.Audit{}).Count(&auditCount)
			Expect(responseCount).To(Equal(int64(1)))
			Expect(auditCount).To(Equal(int64(1)))
		})

		It("should link the audit row to the response without identity on the response", func() {
			err := repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))
			Expect(err).NotTo(HaveOccurred())

			var audit satisfactionDatamodel.Audit
			Expect(db.First(&audit).Error).NotTo(HaveOccurred())
			Expect(audit.EmployeeID).To(Equal(int64(42)))
			Expect(audit.Status).To(Equal(satisfactionDatamodel.StatusCompleted))

			var response satisfactionDatamodel.Response
			Expect(db.First(&response, audit.SatisfactionID).Error).NotTo(HaveOccurred())
			Expect(*response.C1).To(Equal(4))
		})

		It("should reject a second submission for the same period", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())

			err := repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Netral"))
			Expect(err).To(Equal(internal.ErrDuplicateSubmission))

			var responseCount int64
			db.Model(&satisfactionDatamodel.Response{}).Count(&responseCount)
			Expect(responseCount).To(Equal(int64(1)))
		})

		It("should allow the same employee in a different period", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q4", "Puas"))).To(Succeed())
		})

		It("should allow different employees in the same period", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())
			Expect(repo.CreateSubmission(ctx, newSubmission(43, "2025-Q3", "Puas"))).To(Succeed())
		})

		It("should roll back the response row when the audit insert loses the race", func() {
			// A conflicting audit row lands between this transaction's
			// duplicate check and its own audit insert. A create callback
			// on the response table injects it at exactly that point.
			err := db.Callback().Create().After("gorm:create").
				Register("insert_rival_audit", func(tx *gorm.DB) {
					if tx.Statement.Table != "tr_employee_satisfaction" || tx.Error != nil {
						return
					}
					rival := satisfactionDatamodel.Audit{
						EmployeeID: 42, Email: "someone@alora.id", SurveyKey: "2025-Q3",
						SatisfactionID: 999, Status: satisfactionDatamodel.StatusCompleted,
					}
					if err := tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error; err != nil {
						_ = tx.AddError(err)
					}
				})
			Expect(err).NotTo(HaveOccurred())
			defer func() {
				Expect(db.Callback().Create().Remove("insert_rival_audit")).To(Succeed())
			}()

			err = repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))
			Expect(err).To(Equal(internal.ErrDuplicateSubmission))

			// the rollback must take the already-inserted response row with it
			var responseCount, auditCount int64
			db.Model(&satisfactionDatamodel.Response{}).Count(&responseCount)
			db.Model(&satisfactionDatamodel.Audit{}).Count(&auditCount)
			Expect(responseCount).To(Equal(int64(0)))
			Expect(auditCount).To(Equal(int64(0)))
		})

		It("should enforce the period uniqueness at the index", func() {
			audit := satisfactionDatamodel.Audit{
				EmployeeID: 42, Email: "someone@alora.id", SurveyKey: "2025-Q3",
				SatisfactionID: 1, Status: satisfactionDatamodel.StatusCompleted,
			}
			Expect(db.Create(&audit).Error).NotTo(HaveOccurred())

			duplicate := satisfactionDatamodel.Audit{
				EmployeeID: 42, Email: "someone@alora.id", SurveyKey: "2025-Q3",
				SatisfactionID: 2, Status: satisfactionDatamodel.StatusCompleted,
			}
			err := db.Create(&duplicate).Error
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})
	})

	Describe("GetCompletedAudit", func() {
		It("should return nil when the employee has not submitted", func() {
			audit, err := repo.GetCompletedAudit(ctx, 42, "2025-Q3")
			Expect(err).NotTo(HaveOccurred())
			Expect(audit).To(BeNil())
		})

		It("should return the audit record after a submission", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())

			audit, err := repo.GetCompletedAudit(ctx, 42, "2025-Q3")
			Expect(err).NotTo(HaveOccurred())
			Expect(audit).NotTo(BeNil())
			Expect(audit.ID).NotTo(BeZero())
		})

		It("should scope the lookup to the period", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())

			audit, err := repo.GetCompletedAudit(ctx, 42, "2025-Q4")
			Expect(err).NotTo(HaveOccurred())
			Expect(audit).To(BeNil())
		})
	})

	Describe("Stats", func() {
		It("should report zero totals for an empty period", func() {
			stats, err := repo.Stats(ctx, "2025-Q3")
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalSubmissions).To(Equal(int64(0)))
			Expect(stats.SatisfactionDistribution).To(BeEmpty())
			Expect(stats.AverageScores["c1"]).To(BeNil())
		})

		It("should aggregate the distribution and averages per period", func() {
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q3", "Puas"))).To(Succeed())
			Expect(repo.CreateSubmission(ctx, newSubmission(43, "2025-Q3", "Puas"))).To(Succeed())

			other := newSubmission(44, "2025-Q3", "Netral")
			two := 2
			other.Likert[0] = &two
			Expect(repo.CreateSubmission(ctx, other)).To(Succeed())

			// different period stays out of the aggregation
			Expect(repo.CreateSubmission(ctx, newSubmission(42, "2025-Q4", "Tidak Puas"))).To(Succeed())

			stats, err := repo.Stats(ctx, "2025-Q3")
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalSubmissions).To(Equal(int64(3)))

			counts := map[string]int64{}
			for _, entry := range stats.SatisfactionDistribution {
				counts[entry.OverallSatisfaction] = entry.Count
			}
			Expect(counts).To(HaveKeyWithValue("Puas", int64(2)))
			Expect(counts).To(HaveKeyWithValue("Netral", int64(1)))

			Expect(stats.AverageScores["c1"]).NotTo(BeNil())
			Expect(*stats.AverageScores["c1"]).To(BeNumerically("~", (4.0+4.0+2.0)/3.0, 0.001))
			// c2 was never answered
			Expect(stats.AverageScores["c2"]).To(BeNil())
		})
	})
})
