package handler

import (
	"encoding/json"
	"net/http"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/delivery/http/middleware"
	"kist-clinic-backend/internal/usecase"
	"kist-clinic-backend/pkg/response"
	"kist-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LaboratoryTestHandler struct {
	testUsecase usecase.LaboratoryTestUsecase
	validator   *validator.CustomValidator
}

func NewLaboratoryTestHandler(testUsecase usecase.LaboratoryTestUsecase, validator *validator.CustomValidator) *LaboratoryTestHandler {
	return &LaboratoryTestHandler{
		testUsecase: testUsecase,
		validator:   validator,
	}
}

// Create requests a lab test for the authenticated patient
// @Summary Create laboratory test
// @Tags LaboratoryTests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateLaboratoryTestRequest true "Create Laboratory Test Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /laboratory-tests [post]
func (h *LaboratoryTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateLaboratoryTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrPastDate:
			response.Error(w, http.StatusBadRequest, "Test date cannot be in the past", nil)
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create laboratory test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Laboratory test created successfully", test)
}

// List returns lab tests visible to the caller
// @Summary List laboratory tests
// @Tags LaboratoryTests
// @Security BearerAuth
// @Produce json
// @Param ordering query string false "Sort column, prefix with - for descending"
// @Success 200 {object} response.Response
// @Router /laboratory-tests [get]
func (h *LaboratoryTestHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.testUsecase.List(r.Context(), scope, orderingFromRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list laboratory tests")
		return
	}

	response.Success(w, http.StatusOK, "Laboratory tests retrieved successfully", result)
}

// Get returns one lab test
// @Summary Get laboratory test by ID
// @Tags LaboratoryTests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Laboratory Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /laboratory-tests/{id} [get]
func (h *LaboratoryTestHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid laboratory test ID", nil)
		return
	}

	test, err := h.testUsecase.Get(r.Context(), scope, id)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Laboratory test not found")
		default:
			response.InternalServerError(w, "Failed to get laboratory test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory test retrieved successfully", test)
}

// Update edits lab test fields
// @Summary Update laboratory test
// @Tags LaboratoryTests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Laboratory Test ID"
// @Param request body dto.UpdateLaboratoryTestRequest true "Update Laboratory Test Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /laboratory-tests/{id} [put]
func (h *LaboratoryTestHandler) Update(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid laboratory test ID", nil)
		return
	}

	var req dto.UpdateLaboratoryTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.Update(r.Context(), scope, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Laboratory test not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrPastDate:
			response.Error(w, http.StatusBadRequest, "Test date cannot be in the past", nil)
		default:
			response.InternalServerError(w, "Failed to update laboratory test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory test updated successfully", test)
}

// Delete removes a lab test
// @Summary Delete laboratory test
// @Tags LaboratoryTests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Laboratory Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /laboratory-tests/{id} [delete]
func (h *LaboratoryTestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid laboratory test ID", nil)
		return
	}

	if err := h.testUsecase.Delete(r.Context(), scope, id); err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Laboratory test not found")
		default:
			response.InternalServerError(w, "Failed to delete laboratory test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory test deleted successfully", nil)
}

// Cancel cancels a lab test from any state
// @Summary Cancel laboratory test
// @Tags LaboratoryTests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Laboratory Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /laboratory-tests/{id}/cancel [patch]
func (h *LaboratoryTestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid laboratory test ID", nil)
		return
	}

	test, err := h.testUsecase.Cancel(r.Context(), scope, id)
	if err != nil {
		switch err {
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Laboratory test not found")
		default:
			response.InternalServerError(w, "Failed to cancel laboratory test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory test cancelled successfully", test)
}

// UpdateStatus sets the lab test status (staff only)
// @Summary Update laboratory test status
// @Tags LaboratoryTests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Laboratory Test ID"
// @Param request body dto.UpdateRecordStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /laboratory-tests/{id}/update_status [post]
func (h *LaboratoryTestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid laboratory test ID", nil)
		return
	}

	var req dto.UpdateRecordStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.UpdateStatus(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status value", nil)
		case usecase.ErrLabTestNotFound:
			response.NotFound(w, "Laboratory test not found")
		default:
			response.InternalServerError(w, "Failed to update laboratory test status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Laboratory test status updated successfully", test)
}
