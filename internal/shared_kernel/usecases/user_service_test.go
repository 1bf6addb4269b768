package usecases_test

import (
	"context"
	"errors"

	"insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/shared_kernel/usecases"
	mockusecases "insurance-server/test/unit/doubles/shared_kernel/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("UserService", func() {
	var (
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockUserRepository
		service  usecases.UserService
		ctx      context.Context
		user     domain.User
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockUserRepository(ctrl)
		service = usecases.NewUserService(mockRepo)
		ctx = context.Background()
		user = domain.User{ID: "u-1", Username: "jdoe"}
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("CreateUser", func() {
		ginkgo.It("stores a new username", func() {
			mockRepo.EXPECT().GetByUsername(gomock.Any(), domain.Username("jdoe")).Return(domain.User{}, usecases.ErrUserNotFound)
			mockRepo.EXPECT().Create(gomock.Any(), user).Return(nil)

			gomega.Expect(service.CreateUser(ctx, user)).To(gomega.Succeed())
		})

		ginkgo.It("rejects a taken username", func() {
			mockRepo.EXPECT().GetByUsername(gomock.Any(), domain.Username("jdoe")).Return(domain.User{ID: "u-0"}, nil)

			err := service.CreateUser(ctx, user)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserAlreadyExists))
		})

		ginkgo.It("wraps lookup errors", func() {
			mockRepo.EXPECT().GetByUsername(gomock.Any(), domain.Username("jdoe")).Return(domain.User{}, errors.New("timeout"))

			err := service.CreateUser(ctx, user)
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("looking up username")))
		})
	})

	ginkgo.Context("GetUser", func() {
		ginkgo.It("returns the stored user", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID("u-1")).Return(user, nil)

			found, err := service.GetUser(ctx, "u-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found).To(gomega.Equal(user))
		})

		ginkgo.It("maps a missing user", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID("nobody")).Return(domain.User{}, usecases.ErrUserNotFound)

			_, err := service.GetUser(ctx, "nobody")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserNotFound))
		})
	})
})
