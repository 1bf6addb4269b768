package usecases_test

import (
	"context"
	"errors"
	"time"

	"insurance-server/internal/infra/cache"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
	"insurance-server/internal/underwriting/usecases"
	mockusecases "insurance-server/test/unit/doubles/underwriting/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

func homeRiskType() domain.RiskType {
	riskType, err := domain.NewRiskTypeBuilder().
		WithName("Home").
		WithFields([]domain.FieldDefinition{
			{ID: "f-value", Name: "Value", Format: domain.FieldFormatCurrency},
			{ID: "f-kind", Name: "Kind", Format: domain.FieldFormatEnum, RawValues: "House\nApartment"},
		}).
		Build()
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return riskType
}

var _ = ginkgo.Describe("RiskTypeService", func() {
	var (
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockRiskTypeRepository
		service  *usecases.SimpleRiskTypeService
		ctx      context.Context
		riskType domain.RiskType
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockRiskTypeRepository(ctrl)

		riskTypeCache, err := cache.New(cache.DefaultConfig())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		service = usecases.NewRiskTypeService(mockRepo, riskTypeCache, time.Minute)
		ctx = context.Background()
		riskType = homeRiskType()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("CreateRiskType", func() {
		ginkgo.It("stores the risk type", func() {
			mockRepo.EXPECT().Create(gomock.Any(), riskType).Return(nil)
			gomega.Expect(service.CreateRiskType(ctx, riskType)).To(gomega.Succeed())
		})

		ginkgo.It("wraps repository errors", func() {
			mockRepo.EXPECT().Create(gomock.Any(), riskType).Return(errors.New("database error"))

			err := service.CreateRiskType(ctx, riskType)
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("creating risk type")))
		})

		ginkgo.It("drops the cached list", func() {
			mockRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.RiskType{}, nil)
			mockRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.RiskType{riskType}, nil)
			mockRepo.EXPECT().Create(gomock.Any(), riskType).Return(nil)

			before, err := service.ListRiskTypes(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(before).To(gomega.BeEmpty())

			gomega.Expect(service.CreateRiskType(ctx, riskType)).To(gomega.Succeed())

			after, err := service.ListRiskTypes(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(after).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("GetRiskType", func() {
		ginkgo.It("reads through the cache", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil).Times(1)

			first, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(first).To(gomega.Equal(riskType))
			gomega.Expect(second).To(gomega.Equal(first))
		})

		ginkgo.It("does not cache a missing risk type", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.RiskType{}, usecases.ErrRiskTypeNotFound).Times(2)

			_, err := service.GetRiskType(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
			_, err = service.GetRiskType(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
		})

		ginkgo.It("reloads after invalidation", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil).Times(2)

			_, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(service.InvalidateRiskType(ctx, riskType.ID)).To(gomega.Succeed())
			_, err = service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("AddFieldDefinition", func() {
		ginkgo.It("rejects unknown formats before touching the repository", func() {
			field := domain.FieldDefinition{ID: "f-new", Name: "Color", Format: domain.FieldFormat("Color")}

			_, err := service.AddFieldDefinition(ctx, riskType.ID, field)
			gomega.Expect(err).To(gomega.MatchError(domain.ErrUnknownFormat))
		})

		ginkgo.It("appends the field at the end", func() {
			field := domain.FieldDefinition{ID: "f-phone", Name: "Phone", Format: domain.FieldFormatPhoneNumber}

			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil)
			mockRepo.EXPECT().AddField(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.RiskType, added domain.FieldDefinition) error {
					gomega.Expect(updated.Fields).To(gomega.HaveLen(3))
					gomega.Expect(added.Position).To(gomega.Equal(2))
					return nil
				})

			added, err := service.AddFieldDefinition(ctx, riskType.ID, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(added.RiskTypeID).To(gomega.Equal(riskType.ID))
			gomega.Expect(added.Position).To(gomega.Equal(2))
		})

		ginkgo.It("reports a missing risk type", func() {
			field := domain.FieldDefinition{ID: "f-phone", Name: "Phone", Format: domain.FieldFormatPhoneNumber}
			mockRepo.EXPECT().GetByID(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.RiskType{}, usecases.ErrRiskTypeNotFound)

			_, err := service.AddFieldDefinition(ctx, "missing", field)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
		})

		ginkgo.It("evicts the cached risk type", func() {
			field := domain.FieldDefinition{ID: "f-phone", Name: "Phone", Format: domain.FieldFormatPhoneNumber}
			updated := riskType
			updated.Fields = append(append([]domain.FieldDefinition{}, riskType.Fields...), field)

			gomock.InOrder(
				mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil),
				mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil),
				mockRepo.EXPECT().AddField(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
				mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(updated, nil),
			)

			_, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.AddFieldDefinition(ctx, riskType.ID, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			fresh, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fresh.Fields).To(gomega.HaveLen(3))
		})
	})

	ginkgo.Context("ValidateFieldValue", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil).AnyTimes()
		})

		ginkgo.It("accepts a valid value", func() {
			valid, err := service.ValidateFieldValue(ctx, riskType.ID, "f-value", "1000000.00")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(valid).To(gomega.BeTrue())
		})

		ginkgo.It("reports an invalid value without an error", func() {
			valid, err := service.ValidateFieldValue(ctx, riskType.ID, "f-kind", "Castle")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(valid).To(gomega.BeFalse())
		})

		ginkgo.It("fails for a field of another risk type", func() {
			_, err := service.ValidateFieldValue(ctx, riskType.ID, "f-unknown", "x")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldDefinitionNotFound))
		})
	})

	ginkgo.Context("DeleteRiskType", func() {
		ginkgo.It("deletes and evicts", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(riskType, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), riskType.ID).Return(nil)
			mockRepo.EXPECT().GetByID(gomock.Any(), riskType.ID).Return(domain.RiskType{}, usecases.ErrRiskTypeNotFound)

			_, err := service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(service.DeleteRiskType(ctx, riskType.ID)).To(gomega.Succeed())

			_, err = service.GetRiskType(ctx, riskType.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
		})

		ginkgo.It("maps a missing risk type", func() {
			mockRepo.EXPECT().Delete(gomock.Any(), shareddomain.ID("missing")).Return(usecases.ErrRiskTypeNotFound)

			err := service.DeleteRiskType(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
		})
	})
})
