package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alorahq/hr-portal/internal/auth"
)

var _ = Describe("Role", func() {
	Describe("ParseRole", func() {
		It("should accept the known roles", func() {
			Expect(auth.ParseRole("employee")).To(Equal(auth.RoleEmployee))
			Expect(auth.ParseRole("hr")).To(Equal(auth.RoleHR))
			Expect(auth.ParseRole("manager")).To(Equal(auth.RoleManager))
			Expect(auth.ParseRole("admin")).To(Equal(auth.RoleAdmin))
		})

		It("should map unknown values to employee", func() {
			Expect(auth.ParseRole("superuser")).To(Equal(auth.RoleEmployee))
			Expect(auth.ParseRole("")).To(Equal(auth.RoleEmployee))
		})
	})

	Describe("Rank", func() {
		It("should order employee below hr below admin", func() {
			Expect(auth.RoleEmployee.Rank()).To(BeNumerically("<", auth.RoleHR.Rank()))
			Expect(auth.RoleHR.Rank()).To(BeNumerically("<", auth.RoleAdmin.Rank()))
		})

		It("should rank manager level with hr", func() {
			Expect(auth.RoleManager.Rank()).To(Equal(auth.RoleHR.Rank()))
		})
	})
})

var _ = Describe("Policies", func() {
	Describe("RankPolicy", func() {
		It("should admit the minimum role and everything above", func() {
			gate := auth.MinRole(auth.RoleHR)
			Expect(gate.Allows(auth.RoleEmployee)).To(BeFalse())
			Expect(gate.Allows(auth.RoleHR)).To(BeTrue())
			Expect(gate.Allows(auth.RoleManager)).To(BeTrue())
			Expect(gate.Allows(auth.RoleAdmin)).To(BeTrue())
		})

		It("should admit everyone when the minimum is employee", func() {
			gate := auth.MinRole(auth.RoleEmployee)
			Expect(gate.Allows(auth.RoleEmployee)).To(BeTrue())
			Expect(gate.Allows(auth.RoleAdmin)).To(BeTrue())
		})
	})

	Describe("AllowListPolicy", func() {
		It("should admit only the named roles", func() {
			gate := auth.AnyOf(auth.RoleHR, auth.RoleAdmin)
			Expect(gate.Allows(auth.RoleHR)).To(BeTrue())
			Expect(gate.Allows(auth.RoleAdmin)).To(BeTrue())
			Expect(gate.Allows(auth.RoleEmployee)).To(BeFalse())
			// manager shares hr's rank but is not on the list
			Expect(gate.Allows(auth.RoleManager)).To(BeFalse())
		})
	})
})
