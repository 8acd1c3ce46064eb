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

type PharmacyOrderHandler struct {
	orderUsecase usecase.PharmacyOrderUsecase
	validator    *validator.CustomValidator
}

func NewPharmacyOrderHandler(orderUsecase usecase.PharmacyOrderUsecase, validator *validator.CustomValidator) *PharmacyOrderHandler {
	return &PharmacyOrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// Create places an order for the authenticated patient
// @Summary Create pharmacy order
// @Tags PharmacyOrders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePharmacyOrderRequest true "Create Pharmacy Order Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pharmacy-orders [post]
func (h *PharmacyOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePharmacyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price cannot be negative", nil)
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create pharmacy order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pharmacy order created successfully", order)
}

// List returns orders visible to the caller
// @Summary List pharmacy orders
// @Tags PharmacyOrders
// @Security BearerAuth
// @Produce json
// @Param ordering query string false "Sort column, prefix with - for descending"
// @Success 200 {object} response.Response
// @Router /pharmacy-orders [get]
func (h *PharmacyOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.orderUsecase.List(r.Context(), scope, orderingFromRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list pharmacy orders")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy orders retrieved successfully", result)
}

// Get returns one order
// @Summary Get pharmacy order by ID
// @Tags PharmacyOrders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pharmacy Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy-orders/{id} [get]
func (h *PharmacyOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy order ID", nil)
		return
	}

	order, err := h.orderUsecase.Get(r.Context(), scope, id)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Pharmacy order not found")
		default:
			response.InternalServerError(w, "Failed to get pharmacy order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order retrieved successfully", order)
}

// Update edits order fields
// @Summary Update pharmacy order
// @Tags PharmacyOrders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pharmacy Order ID"
// @Param request body dto.UpdatePharmacyOrderRequest true "Update Pharmacy Order Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy-orders/{id} [put]
func (h *PharmacyOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy order ID", nil)
		return
	}

	var req dto.UpdatePharmacyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Update(r.Context(), scope, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Pharmacy order not found")
		case usecase.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price cannot be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update pharmacy order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order updated successfully", order)
}

// Delete removes an order
// @Summary Delete pharmacy order
// @Tags PharmacyOrders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pharmacy Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy-orders/{id} [delete]
func (h *PharmacyOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy order ID", nil)
		return
	}

	if err := h.orderUsecase.Delete(r.Context(), scope, id); err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Pharmacy order not found")
		default:
			response.InternalServerError(w, "Failed to delete pharmacy order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order deleted successfully", nil)
}

// Cancel cancels a pending or processing order
// @Summary Cancel pharmacy order
// @Tags PharmacyOrders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pharmacy Order ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy-orders/{id}/cancel [post]
func (h *PharmacyOrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy order ID", nil)
		return
	}

	order, err := h.orderUsecase.Cancel(r.Context(), scope, id)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Pharmacy order not found")
		case usecase.ErrOrderNotCancellable:
			response.Error(w, http.StatusBadRequest, "Only pending or processing orders can be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel pharmacy order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order cancelled successfully", order)
}

// UpdateStatus sets the order status (staff only)
// @Summary Update pharmacy order status
// @Tags PharmacyOrders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pharmacy Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy-orders/{id}/update_status [post]
func (h *PharmacyOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy order ID", nil)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.UpdateStatus(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status value", nil)
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Pharmacy order not found")
		default:
			response.InternalServerError(w, "Failed to update pharmacy order status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order status updated successfully", order)
}
