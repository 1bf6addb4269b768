package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"insurance-server/internal/shared_kernel/domain"
	shared_httpapi "insurance-server/internal/shared_kernel/httpapi"
	shared_httpapi_internal "insurance-server/internal/shared_kernel/httpapi/internal"
	"insurance-server/internal/shared_kernel/usecases"
	mockusecases "insurance-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("UserController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockUserService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockUserService(ctrl)

		router = http.NewServeMux()
		shared_httpapi.NewUserController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createUser", func() {
		It("creates the user", func() {
			mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, user domain.User) error {
					Expect(user.Username).To(Equal(domain.Username("jdoe")))
					return nil
				})

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"username":"jdoe"}`)))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response shared_httpapi_internal.UserResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.ID).NotTo(BeEmpty())
			Expect(response.Username).To(Equal("jdoe"))
		})

		It("rejects an empty username", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"username":""}`)))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring("username is required"))
		})

		It("returns conflict for a taken username", func() {
			mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(usecases.ErrUserAlreadyExists)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"username":"jdoe"}`)))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("returns internal server error when storage fails", func() {
			mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"username":"jdoe"}`)))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("disk full"))
		})
	})

	Context("getUser", func() {
		It("returns the user", func() {
			mockService.EXPECT().GetUser(gomock.Any(), domain.ID("u-1")).Return(domain.User{ID: "u-1", Username: "jdoe"}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/users/u-1", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response shared_httpapi_internal.UserResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Username).To(Equal("jdoe"))
		})

		It("returns not found for an unknown user", func() {
			mockService.EXPECT().GetUser(gomock.Any(), domain.ID("ghost")).Return(domain.User{}, usecases.ErrUserNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/users/ghost", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
