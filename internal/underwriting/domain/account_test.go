package domain_test

import (
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RiskType", func() {
	It("requires a name", func() {
		_, err := domain.NewRiskTypeBuilder().Build()
		Expect(err).To(MatchError(domain.ErrRiskTypeNameRequired))
	})

	It("starts at version 1 with no fields", func() {
		riskType, err := domain.NewRiskTypeBuilder().WithName("Home").Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(riskType.ID).NotTo(BeEmpty())
		Expect(riskType.Version).To(Equal(shareddomain.Version(1)))
		Expect(riskType.Fields).To(BeEmpty())
	})

	It("keeps fields in the order they were added", func() {
		riskType, err := domain.NewRiskTypeBuilder().WithName("Home").Build()
		Expect(err).NotTo(HaveOccurred())

		address := domain.FieldDefinition{ID: "f-1", Name: "Address", Format: domain.FieldFormatAddress}
		value := domain.FieldDefinition{ID: "f-2", Name: "Value", Format: domain.FieldFormatCurrency}

		added := riskType.AddField(address)
		riskType.AddField(value)

		Expect(added.RiskTypeID).To(Equal(riskType.ID))
		Expect(riskType.Fields).To(HaveLen(2))
		Expect(riskType.Fields[0].Position).To(Equal(0))
		Expect(riskType.Fields[1].Position).To(Equal(1))
		Expect(riskType.Fields[1].Name).To(Equal(shareddomain.Name("Value")))
		Expect(riskType.Version).To(Equal(shareddomain.Version(3)))
	})

	It("finds fields by ID", func() {
		riskType, err := domain.NewRiskTypeBuilder().
			WithName("Home").
			WithFields([]domain.FieldDefinition{{ID: "f-1", Name: "Address", Format: domain.FieldFormatAddress}}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		field, found := riskType.FieldByID("f-1")
		Expect(found).To(BeTrue())
		Expect(field.Name).To(Equal(shareddomain.Name("Address")))

		_, found = riskType.FieldByID("missing")
		Expect(found).To(BeFalse())
	})
})

var _ = Describe("Account", func() {
	var field domain.FieldDefinition

	BeforeEach(func() {
		field = domain.FieldDefinition{ID: "f-1", Name: "Value", Format: domain.FieldFormatCurrency}
	})

	Context("Build", func() {
		It("requires a user", func() {
			_, err := domain.NewAccountBuilder().WithRiskTypeID("rt-1").Build()
			Expect(err).To(MatchError(domain.ErrUserIDRequired))
		})

		It("requires a risk type", func() {
			_, err := domain.NewAccountBuilder().WithUserID("u-1").Build()
			Expect(err).To(MatchError(domain.ErrRiskTypeIDRequired))
		})

		It("builds an empty account", func() {
			account, err := domain.NewAccountBuilder().WithUserID("u-1").WithRiskTypeID("rt-1").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(account.ID).NotTo(BeEmpty())
			Expect(account.Values).To(BeEmpty())
		})
	})

	Context("field values", func() {
		var account domain.Account

		BeforeEach(func() {
			var err error
			account, err = domain.NewAccountBuilder().WithUserID("u-1").WithRiskTypeID("rt-1").Build()
			Expect(err).NotTo(HaveOccurred())
		})

		It("appends on every AddFieldValue", func() {
			account.AddFieldValue(field, "1")
			account.AddFieldValue(field, "2")

			values := account.ValuesForField("f-1")
			Expect(values).To(HaveLen(2))
			Expect(values[0].AccountID).To(Equal(account.ID))
			Expect(values[0].ID).NotTo(Equal(values[1].ID))
		})

		It("replaces the existing value on SetFieldValue", func() {
			first := account.SetFieldValue(field, "1000000.00")
			second := account.SetFieldValue(field, "1")

			Expect(second.ID).To(Equal(first.ID))
			Expect(account.Values).To(HaveLen(1))
			Expect(account.Values[0].Value).To(Equal("1"))
		})

		It("stores values that do not validate", func() {
			stored := account.SetFieldValue(field, "not a number")

			valid, err := stored.IsValid()
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeFalse())
			Expect(account.Values).To(HaveLen(1))
		})

		It("bumps the version on change", func() {
			account.SetFieldValue(field, "1")
			Expect(account.Version).To(Equal(shareddomain.Version(2)))
		})

		It("returns nothing for a field without values", func() {
			Expect(account.ValuesForField("other")).To(BeEmpty())
		})
	})
})
