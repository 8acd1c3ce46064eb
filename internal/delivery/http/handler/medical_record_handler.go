package handler

import (
	"net/http"

	"kist-clinic-backend/internal/delivery/http/middleware"
	"kist-clinic-backend/internal/usecase"
	"kist-clinic-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxUploadSize bounds medical record uploads (32 MB).
const maxUploadSize = 32 << 20

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
	}
}

// Create uploads a medical record document
// @Summary Upload medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Record title"
// @Param description formData string false "Record description"
// @Param file formData file true "Document (pdf, jpg, png)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		response.Error(w, http.StatusBadRequest, "Title is required", nil)
		return
	}
	description := r.FormValue("description")

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	record, err := h.recordUsecase.Create(r.Context(), userID, title, description, header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to upload medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record uploaded successfully", record)
}

// List returns records visible to the caller
// @Summary List medical records
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param ordering query string false "Sort column, prefix with - for descending"
// @Success 200 {object} response.Response
// @Router /medical-records [get]
func (h *MedicalRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.recordUsecase.List(r.Context(), scope, orderingFromRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", result)
}

// Get returns one record
// @Summary Get medical record by ID
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), scope, id)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// Delete removes a record and its file. Mounted on both DELETE
// /medical-records/{id} and POST /medical-records/{id}/delete_record for
// clients that cannot send DELETE.
// @Summary Delete medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), scope, id); err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}
