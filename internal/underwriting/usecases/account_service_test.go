package usecases_test

import (
	"context"
	"errors"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
	"insurance-server/internal/underwriting/usecases"
	mockusecases "insurance-server/test/unit/doubles/underwriting/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("AccountService", func() {
	var (
		ctrl          *gomock.Controller
		mockRepo      *mockusecases.MockAccountRepository
		mockRiskTypes *mockusecases.MockRiskTypeService
		mockUsers     *mockusecases.MockUserProvider
		service       *usecases.SimpleAccountService
		ctx           context.Context
		riskType      domain.RiskType
		account       domain.Account
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockAccountRepository(ctrl)
		mockRiskTypes = mockusecases.NewMockRiskTypeService(ctrl)
		mockUsers = mockusecases.NewMockUserProvider(ctrl)
		service = usecases.NewAccountService(mockRepo, mockRiskTypes, mockUsers)
		ctx = context.Background()

		riskType = homeRiskType()

		var err error
		account, err = domain.NewAccountBuilder().
			WithUserID("u-1").
			WithRiskTypeID(riskType.ID).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("OpenAccount", func() {
		ginkgo.It("stores the account when user and risk type exist", func() {
			mockUsers.EXPECT().GetUser(gomock.Any(), shareddomain.ID("u-1")).
				Return(shareddomain.User{ID: "u-1", Username: "jdoe"}, nil)
			mockRiskTypes.EXPECT().GetRiskType(gomock.Any(), riskType.ID).Return(riskType, nil)
			mockRepo.EXPECT().Create(gomock.Any(), account).Return(nil)

			gomega.Expect(service.OpenAccount(ctx, account)).To(gomega.Succeed())
		})

		ginkgo.It("fails for an unknown user", func() {
			mockUsers.EXPECT().GetUser(gomock.Any(), shareddomain.ID("u-1")).
				Return(shareddomain.User{}, usecases.ErrUserNotFound)

			err := service.OpenAccount(ctx, account)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserNotFound))
		})

		ginkgo.It("fails for an unknown risk type", func() {
			mockUsers.EXPECT().GetUser(gomock.Any(), shareddomain.ID("u-1")).
				Return(shareddomain.User{ID: "u-1"}, nil)
			mockRiskTypes.EXPECT().GetRiskType(gomock.Any(), riskType.ID).
				Return(domain.RiskType{}, usecases.ErrRiskTypeNotFound)

			err := service.OpenAccount(ctx, account)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRiskTypeNotFound))
		})
	})

	ginkgo.Context("GetAccount", func() {
		ginkgo.It("maps a missing account", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.Account{}, usecases.ErrAccountNotFound)

			_, err := service.GetAccount(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAccountNotFound))
		})

		ginkgo.It("wraps repository errors", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).
				Return(domain.Account{}, errors.New("connection reset"))

			_, err := service.GetAccount(ctx, account.ID)
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("getting account")))
		})
	})

	ginkgo.Context("ListAccountsByUser", func() {
		ginkgo.It("returns the user's accounts", func() {
			pagination := usecases.Pagination{Limit: 10}
			mockUsers.EXPECT().GetUser(gomock.Any(), shareddomain.ID("u-1")).Return(shareddomain.User{ID: "u-1"}, nil)
			mockRepo.EXPECT().FindAllByUser(gomock.Any(), shareddomain.ID("u-1"), pagination).
				Return([]domain.Account{account}, 1, nil)

			accounts, total, err := service.ListAccountsByUser(ctx, "u-1", pagination)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(accounts).To(gomega.ConsistOf(account))
		})

		ginkgo.It("fails for an unknown user", func() {
			mockUsers.EXPECT().GetUser(gomock.Any(), shareddomain.ID("nobody")).
				Return(shareddomain.User{}, usecases.ErrUserNotFound)

			_, _, err := service.ListAccountsByUser(ctx, "nobody", usecases.Pagination{Limit: 10})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserNotFound))
		})
	})

	ginkgo.Context("SetFieldValue", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil).AnyTimes()
			mockRiskTypes.EXPECT().GetRiskType(gomock.Any(), riskType.ID).Return(riskType, nil).AnyTimes()
		})

		ginkgo.It("stores a valid value and renders it", func() {
			mockRepo.EXPECT().SaveFieldValue(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.Account, value domain.FieldValue) error {
					gomega.Expect(updated.Values).To(gomega.HaveLen(1))
					gomega.Expect(value.Field.ID).To(gomega.Equal(shareddomain.ID("f-value")))
					gomega.Expect(value.AccountID).To(gomega.Equal(account.ID))
					return nil
				})

			rendered, err := service.SetFieldValue(ctx, account.ID, "f-value", "1000000.00")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rendered.Valid).To(gomega.BeTrue())
			gomega.Expect(rendered.Edit).To(gomega.Equal(`<input value="1000000.00" type="number" min="0" step="0.01">`))
			gomega.Expect(rendered.Display).To(gomega.Equal("1000000.00"))
		})

		ginkgo.It("stores a value that does not validate", func() {
			mockRepo.EXPECT().SaveFieldValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			rendered, err := service.SetFieldValue(ctx, account.ID, "f-kind", "Castle")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rendered.Valid).To(gomega.BeFalse())
			gomega.Expect(rendered.Value).To(gomega.Equal("Castle"))
			gomega.Expect(rendered.Edit).To(gomega.Equal("<select><option >House</option><option >Apartment</option></select>"))
		})

		ginkgo.It("rejects a field outside the account's risk type", func() {
			_, err := service.SetFieldValue(ctx, account.ID, "f-other", "x")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotInRiskType))
		})

		ginkgo.It("wraps storage errors", func() {
			mockRepo.EXPECT().SaveFieldValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

			_, err := service.SetFieldValue(ctx, account.ID, "f-value", "1")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("saving field value")))
		})
	})

	ginkgo.Context("RenderAccount", func() {
		ginkgo.It("renders every value in storage order", func() {
			value, _ := riskType.FieldByID("f-value")
			kind, _ := riskType.FieldByID("f-kind")
			account.SetFieldValue(value, "250.00")
			account.SetFieldValue(kind, "Apartment")
			mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

			rendered, err := service.RenderAccount(ctx, account.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rendered.Values).To(gomega.HaveLen(2))
			gomega.Expect(rendered.Values[0].FieldName).To(gomega.Equal(shareddomain.Name("Value")))
			gomega.Expect(rendered.Values[0].Display).To(gomega.Equal("250.00"))
			gomega.Expect(rendered.Values[1].Edit).To(gomega.ContainSubstring("<option selected>Apartment</option>"))
			gomega.Expect(rendered.Values[1].Valid).To(gomega.BeTrue())
		})

		ginkgo.It("fails on a stored value with an unknown format", func() {
			account.SetFieldValue(domain.FieldDefinition{ID: "f-bad", Name: "Bad", Format: "Hologram"}, "x")
			mockRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

			_, err := service.RenderAccount(ctx, account.ID)
			gomega.Expect(err).To(gomega.MatchError(domain.ErrUnknownFormat))
		})
	})

	ginkgo.Context("CloseAccount", func() {
		ginkgo.It("deletes the account", func() {
			mockRepo.EXPECT().Delete(gomock.Any(), account.ID).Return(nil)
			gomega.Expect(service.CloseAccount(ctx, account.ID)).To(gomega.Succeed())
		})

		ginkgo.It("maps a missing account", func() {
			mockRepo.EXPECT().Delete(gomock.Any(), shareddomain.ID("missing")).Return(usecases.ErrAccountNotFound)
			gomega.Expect(service.CloseAccount(ctx, "missing")).To(gomega.MatchError(usecases.ErrAccountNotFound))
		})
	})
})
