package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/service"
)

type JobHandler struct {
	jobService service.JobService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewJobHandler(jobService service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	job, err := h.jobService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, job)
}

func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/jobs/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid job id", err.Error())
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, job)
}

func (h *JobHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.GetAll(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, jobs)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/jobs/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid job id", err.Error())
		return
	}

	var req dto.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	job, err := h.jobService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/jobs/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid job id", err.Error())
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Departments отдаёт список уникальных подразделений
func (h *JobHandler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.jobService.Departments(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, departments)
}
