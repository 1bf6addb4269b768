package domain_test

import (
	"insurance-server/internal/underwriting/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldDefinition", func() {
	Context("Build", func() {
		It("builds a definition with a generated ID", func() {
			field, err := domain.NewFieldDefinitionBuilder().
				WithName("Property type").
				WithFormat("Enum").
				WithAllowedValues("House", "Duplex").
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(field.ID).NotTo(BeEmpty())
			Expect(field.Format).To(Equal(domain.FieldFormatEnum))
			Expect(field.RawValues).To(Equal("House\nDuplex"))
		})

		It("requires a name", func() {
			_, err := domain.NewFieldDefinitionBuilder().WithFormat("String").Build()
			Expect(err).To(MatchError(domain.ErrFieldNameRequired))
		})

		It("rejects a format that is not registered", func() {
			_, err := domain.NewFieldDefinitionBuilder().WithName("Color").WithFormat("Color").Build()
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
			Expect(err.Error()).To(ContainSubstring(`"Color"`))
		})

		It("matches format names case-sensitively", func() {
			_, err := domain.NewFieldDefinitionBuilder().WithName("Phone").WithFormat("phonenumber").Build()
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
		})

		It("requires a format", func() {
			_, err := domain.NewFieldDefinitionBuilder().WithName("Phone").Build()
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
		})
	})

	Context("AllowedValues", func() {
		It("splits raw values on newlines in stored order", func() {
			field := domain.FieldDefinition{RawValues: "House\nDuplex\nApartment\nCondominium"}
			Expect(field.AllowedValues()).To(Equal([]string{"House", "Duplex", "Apartment", "Condominium"}))
		})

		It("keeps empty entries", func() {
			field := domain.FieldDefinition{RawValues: "House\n\nDuplex"}
			Expect(field.AllowedValues()).To(Equal([]string{"House", "", "Duplex"}))
		})
	})

	Context("Validate", func() {
		It("passes the allowed values to the behavior", func() {
			field := domain.FieldDefinition{
				Name:      "Property type",
				Format:    domain.FieldFormatEnum,
				RawValues: "House\nDuplex\nApartment\nCondominium",
			}

			valid, err := field.Validate("Condominium")
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeTrue())

			valid, err = field.Validate("Castle")
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeFalse())
		})

		It("fails with ErrUnknownFormat for a corrupt format", func() {
			field := domain.FieldDefinition{Name: "Broken", Format: "Color"}

			valid, err := field.Validate("anything")
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
			Expect(err.Error()).To(ContainSubstring("Broken"))
			Expect(valid).To(BeFalse())
		})
	})

	Context("ResolveBehavior", func() {
		It("resolves every supported format", func() {
			formats := domain.SupportedFormats()
			Expect(formats).To(HaveLen(5))

			for _, format := range formats {
				behavior, err := domain.ResolveBehavior(format)
				Expect(err).NotTo(HaveOccurred())
				Expect(behavior).NotTo(BeNil())
			}
		})

		It("returns the same behavior for repeated lookups", func() {
			first, _ := domain.ResolveBehavior(domain.FieldFormatCurrency)
			second, _ := domain.ResolveBehavior(domain.FieldFormatCurrency)
			Expect(first).To(Equal(second))
		})

		It("fails for an unregistered name", func() {
			_, err := domain.ResolveBehavior("Color")
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
		})

		It("does not let callers mutate the supported list", func() {
			formats := domain.SupportedFormats()
			formats[0] = "Color"
			Expect(domain.SupportedFormats()[0]).To(Equal(domain.FieldFormatAddress))
		})
	})
})

var _ = Describe("FieldValue", func() {
	var field domain.FieldDefinition

	BeforeEach(func() {
		var err error
		field, err = domain.NewFieldDefinitionBuilder().
			WithName("Property type").
			WithFormat("Enum").
			WithAllowedValues("House", "Duplex", "Apartment", "Condominium").
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("renders through the definition's behavior", func() {
		value := domain.FieldValue{Field: field, Value: "Apartment"}

		edit, err := value.RenderEdit()
		Expect(err).NotTo(HaveOccurred())
		Expect(edit).To(ContainSubstring("<option selected>Apartment</option>"))

		display, err := value.RenderDisplay()
		Expect(err).NotTo(HaveOccurred())
		Expect(display).To(Equal("Apartment"))
	})

	It("renders values that would not validate", func() {
		value := domain.FieldValue{Field: field, Value: "Castle"}

		valid, err := value.IsValid()
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeFalse())

		display, err := value.RenderDisplay()
		Expect(err).NotTo(HaveOccurred())
		Expect(display).To(Equal("Castle"))
	})

	It("replaces the stored value", func() {
		value := domain.FieldValue{Field: field, Value: "House"}
		value.SetValue("Duplex")
		Expect(value.Value).To(Equal("Duplex"))
	})

	It("fails to render when the format is corrupt", func() {
		value := domain.FieldValue{Field: domain.FieldDefinition{Name: "Broken", Format: "Color"}, Value: "x"}

		_, err := value.RenderEdit()
		Expect(err).To(MatchError(domain.ErrUnknownFormat))

		_, err = value.RenderDisplay()
		Expect(err).To(MatchError(domain.ErrUnknownFormat))
	})
})
