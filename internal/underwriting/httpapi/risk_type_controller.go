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
	createRiskTypeErrMessage   = "failed to create risk type"
	getRiskTypeErrMessage      = "failed to get risk type"
	listRiskTypesErrMessage    = "failed to list risk types"
	deleteRiskTypeErrMessage   = "failed to delete risk type"
	addFieldErrMessage         = "failed to add custom field"
	validateValueErrMessage    = "failed to validate value"
	riskTypeNotFoundErrMessage = "risk type not found"
	fieldNotFoundErrMessage    = "custom field not found"
	unknownFormatErrMessage    = "unknown field format"
)

func NewRiskTypeController(service usecases.RiskTypeService) *RiskTypeController {
	return &RiskTypeController{
		service: service,
	}
}

var _ httpserver.Controller = &RiskTypeController{}

type RiskTypeController struct {
	service usecases.RiskTypeService
}

func (c *RiskTypeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /risk-types", c.listRiskTypes())
	router.Handle("GET /risk-types/{id}", c.getRiskType())
	router.Handle("POST /risk-types", c.createRiskType())
	router.Handle("DELETE /risk-types/{id}", c.deleteRiskType())
	router.Handle("POST /risk-types/{id}/custom-fields", c.addCustomField())
	router.Handle("POST /risk-types/{id}/custom-fields/{field_id}/validate", c.validateValue())
}

func (c *RiskTypeController) listRiskTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		riskTypes, err := c.service.ListRiskTypes(r.Context())
		if err != nil {
			slog.Error("listing risk types", slog.String("error", err.Error()))
			http.Error(w, listRiskTypesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RiskTypeResponse, len(riskTypes))
		for i, riskType := range riskTypes {
			responses[i] = internal.ToRiskTypeResponse(riskType)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *RiskTypeController) getRiskType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		riskType, err := c.service.GetRiskType(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrRiskTypeNotFound) {
			http.Error(w, riskTypeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting risk type", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, getRiskTypeErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRiskTypeResponse(riskType))
	}
}

func (c *RiskTypeController) createRiskType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RiskTypeCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createRiskTypeErrMessage, http.StatusBadRequest)
			return
		}

		riskType, err := domain.NewRiskTypeBuilder().WithName(body.Name).Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateRiskType(r.Context(), riskType)
		if err != nil {
			slog.Error("creating risk type", slog.String("error", err.Error()))
			http.Error(w, createRiskTypeErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRiskTypeResponse(riskType))
	}
}

func (c *RiskTypeController) deleteRiskType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteRiskType(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrRiskTypeNotFound) {
			http.Error(w, riskTypeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting risk type", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, deleteRiskTypeErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RiskTypeController) addCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.CustomFieldCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, addFieldErrMessage, http.StatusBadRequest)
			return
		}

		field, err := domain.NewFieldDefinitionBuilder().
			WithRiskTypeID(shareddomain.ID(id)).
			WithName(body.Name).
			WithFormat(body.Format).
			WithRawValues(body.RawValues).
			Build()
		if errors.Is(err, domain.ErrUnknownFormat) {
			http.Error(w, unknownFormatErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		added, err := c.service.AddFieldDefinition(r.Context(), shareddomain.ID(id), field)
		switch {
		case errors.Is(err, usecases.ErrRiskTypeNotFound):
			http.Error(w, riskTypeNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrUnknownFormat):
			http.Error(w, unknownFormatErrMessage, http.StatusBadRequest)
			return
		case err != nil:
			slog.Error("adding custom field", slog.String("risk_type_id", id), slog.String("error", err.Error()))
			http.Error(w, addFieldErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCustomFieldResponse(added))
	}
}

func (c *RiskTypeController) validateValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		fieldID := r.PathValue("field_id")

		var body internal.ValidateValueRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, validateValueErrMessage, http.StatusBadRequest)
			return
		}

		valid, err := c.service.ValidateFieldValue(r.Context(), shareddomain.ID(id), shareddomain.ID(fieldID), body.Value)
		switch {
		case errors.Is(err, usecases.ErrRiskTypeNotFound):
			http.Error(w, riskTypeNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrFieldDefinitionNotFound):
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("validating value",
				slog.String("risk_type_id", id),
				slog.String("field_id", fieldID),
				slog.String("error", err.Error()))
			http.Error(w, validateValueErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ValidateValueResponse{Valid: valid})
	}
}
