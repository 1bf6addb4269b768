package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"insurance-server/internal/infra/httpserver"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
	"insurance-server/internal/underwriting/httpapi/internal"
	"insurance-server/internal/underwriting/usecases"
)

const (
	openAccountErrMessage        = "failed to open account"
	getAccountErrMessage         = "failed to get account"
	closeAccountErrMessage       = "failed to close account"
	listAccountsErrMessage       = "failed to list accounts"
	setCustomValueErrMessage     = "failed to set custom value"
	accountNotFoundErrMessage    = "account not found"
	userNotFoundErrMessage       = "user not found"
	fieldNotInRiskTypeErrMessage = "custom field does not belong to the account risk type"
)

func NewAccountController(service usecases.AccountService) *AccountController {
	return &AccountController{
		service: service,
	}
}

var _ httpserver.Controller = &AccountController{}

type AccountController struct {
	service usecases.AccountService
}

func (c *AccountController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /accounts", c.openAccount())
	router.Handle("GET /accounts/{id}", c.getAccount())
	router.Handle("DELETE /accounts/{id}", c.closeAccount())
	router.Handle("PUT /accounts/{id}/custom-values/{field_id}", c.setCustomValue())
	router.Handle("GET /users/{id}/accounts", c.listUserAccounts())
}

func (c *AccountController) listUserAccounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("id")

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: paginationParams.Offset(),
		}

		accounts, total, err := c.service.ListAccountsByUser(r.Context(), shareddomain.ID(userID), pagination)
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing accounts", slog.String("user_id", userID), slog.String("error", err.Error()))
			http.Error(w, listAccountsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.AccountSummaryResponse, len(accounts))
		for i, account := range accounts {
			responses[i] = internal.ToAccountSummaryResponse(account)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *AccountController) openAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.AccountCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, openAccountErrMessage, http.StatusBadRequest)
			return
		}

		account, err := domain.NewAccountBuilder().
			WithUserID(shareddomain.ID(body.UserID)).
			WithRiskTypeID(shareddomain.ID(body.RiskTypeID)).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.OpenAccount(r.Context(), account)
		switch {
		case errors.Is(err, usecases.ErrUserNotFound):
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrRiskTypeNotFound):
			http.Error(w, riskTypeNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("opening account", slog.String("error", err.Error()))
			http.Error(w, openAccountErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToAccountResponse(usecases.RenderedAccount{
			Account: account,
		}))
	}
}

func (c *AccountController) getAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		rendered, err := c.service.RenderAccount(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrAccountNotFound) {
			http.Error(w, accountNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting account", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, getAccountErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAccountResponse(rendered))
	}
}

func (c *AccountController) closeAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.CloseAccount(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrAccountNotFound) {
			http.Error(w, accountNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("closing account", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, closeAccountErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *AccountController) setCustomValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		fieldID := r.PathValue("field_id")

		var body internal.SetCustomValueRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, setCustomValueErrMessage, http.StatusBadRequest)
			return
		}

		rendered, err := c.service.SetFieldValue(r.Context(), shareddomain.ID(id), shareddomain.ID(fieldID), body.Value)
		switch {
		case errors.Is(err, usecases.ErrAccountNotFound):
			http.Error(w, accountNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrFieldNotInRiskType):
			http.Error(w, fieldNotInRiskTypeErrMessage, http.StatusBadRequest)
			return
		case err != nil:
			slog.Error("setting custom value",
				slog.String("account_id", id),
				slog.String("field_id", fieldID),
				slog.String("error", err.Error()))
			http.Error(w, setCustomValueErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSetCustomValueResponse(rendered))
	}
}
