package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/service"
)

type ClassHandler struct {
	classService service.ClassService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewClassHandler(classService service.ClassService, logger *slog.Logger) *ClassHandler {
	return &ClassHandler{
		classService: classService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	class, err := h.classService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, class)
}

func (h *ClassHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/classes/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid class id", err.Error())
		return
	}

	class, err := h.classService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, class)
}

func (h *ClassHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classService.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, classes)
}

func (h *ClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/classes/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid class id", err.Error())
		return
	}

	var req dto.UpdateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	class, err := h.classService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, class)
}

func (h *ClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/classes/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid class id", err.Error())
		return
	}

	if err := h.classService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
