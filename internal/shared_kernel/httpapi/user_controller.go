package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"insurance-server/internal/infra/httpserver"
	"insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/shared_kernel/httpapi/internal"
	"insurance-server/internal/shared_kernel/usecases"
)

const (
	createUserErrMessage   = "failed to create user"
	getUserErrMessage      = "failed to get user"
	userNotFoundErrMessage = "user not found"
	userExistsErrMessage   = "username already taken"
)

func NewUserController(service usecases.UserService) *UserController {
	return &UserController{
		service: service,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service usecases.UserService
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /users", c.createUser())
	router.Handle("GET /users/{id}", c.getUser())
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.UserCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createUserErrMessage, http.StatusBadRequest)
			return
		}

		user, err := domain.NewUserBuilder().WithUsername(body.Username).Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateUser(r.Context(), user)
		if errors.Is(err, usecases.ErrUserAlreadyExists) {
			http.Error(w, userExistsErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating user", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToUserResponse(user))
	}
}

func (c *UserController) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		user, err := c.service.GetUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting user", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, getUserErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToUserResponse(user))
	}
}
