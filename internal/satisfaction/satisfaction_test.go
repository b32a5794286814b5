package satisfaction_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alorahq/hr-portal/internal/satisfaction"
)

var _ = Describe("SurveyKey", func() {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}

	It("should map every month to its quarter", func() {
		Expect(satisfaction.SurveyKey(date(2025, time.January, 1))).To(Equal("2025-Q1"))
		Expect(satisfaction.SurveyKey(date(2025, time.February, 14))).To(Equal("2025-Q1"))
		Expect(satisfaction.SurveyKey(date(2025, time.March, 31))).To(Equal("2025-Q1"))
		Expect(satisfaction.SurveyKey(date(2025, time.April, 1))).To(Equal("2025-Q2"))
		Expect(satisfaction.SurveyKey(date(2025, time.June, 30))).To(Equal("2025-Q2"))
		Expect(satisfaction.SurveyKey(date(2025, time.July, 1))).To(Equal("2025-Q3"))
		Expect(satisfaction.SurveyKey(date(2025, time.September, 30))).To(Equal("2025-Q3"))
		Expect(satisfaction.SurveyKey(date(2025, time.October, 1))).To(Equal("2025-Q4"))
		Expect(satisfaction.SurveyKey(date(2025, time.December, 31))).To(Equal("2025-Q4"))
	})

	It("should carry the year across quarter boundaries", func() {
		Expect(satisfaction.SurveyKey(date(2024, time.December, 31))).To(Equal("2024-Q4"))
		Expect(satisfaction.SurveyKey(date(2025, time.January, 1))).To(Equal("2025-Q1"))
	})
})
