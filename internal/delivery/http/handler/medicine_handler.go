package handler

import (
	"encoding/json"
	"net/http"

	"kist-clinic-backend/internal/delivery/dto"
	"kist-clinic-backend/internal/delivery/http/middleware"
	"kist-clinic-backend/internal/domain/entity"
	"kist-clinic-backend/internal/usecase"
	"kist-clinic-backend/pkg/response"
	"kist-clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// filterFromRequest builds the catalog filter from query parameters.
func filterFromRequest(r *http.Request) entity.MedicineFilter {
	q := r.URL.Query()
	return entity.MedicineFilter{
		Category: q.Get("category"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
		InStock:  q.Get("in_stock") == "true",
		Search:   q.Get("search"),
		Ordering: orderingFromRequest(r),
	}
}

// List returns the public medicine catalog
// @Summary List medicines
// @Tags Medicines
// @Produce json
// @Param category query string false "Category, case-insensitive"
// @Param min_price query string false "Minimum price, inclusive"
// @Param max_price query string false "Maximum price, inclusive"
// @Param in_stock query bool false "Only items with stock"
// @Param search query string false "Free text over name, description and category"
// @Param ordering query string false "Sort column, prefix with - for descending"
// @Success 200 {object} response.Response
// @Router /medicines [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.medicineUsecase.List(r.Context(), filterFromRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", result)
}

// Get returns one catalog item
// @Summary Get medicine by ID
// @Tags Medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [get]
func (h *MedicineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	medicine, err := h.medicineUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

// Categories returns the distinct catalog categories
// @Summary List medicine categories
// @Tags Medicines
// @Produce json
// @Success 200 {object} response.Response
// @Router /medicines/categories [get]
func (h *MedicineHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.medicineUsecase.Categories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medicine categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// Create adds a catalog item (staff only)
// @Summary Create medicine
// @Tags Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicineRequest true "Create Medicine Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /medicines [post]
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineAlreadyExists:
			response.Conflict(w, "Medicine with this ID already exists")
		case usecase.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price cannot be negative", nil)
		default:
			response.InternalServerError(w, "Failed to create medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

// Update edits a catalog item (staff only)
// @Summary Update medicine
// @Tags Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param request body dto.UpdateMedicineRequest true "Update Medicine Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [put]
func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price cannot be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

// Delete removes a catalog item (staff only)
// @Summary Delete medicine
// @Tags Medicines
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id := mux.Vars(r)["id"]

	if err := h.medicineUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
