package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/service"
)

type InterviewerHandler struct {
	interviewerService service.InterviewerService
	validator          *validator.Validate
	logger             *slog.Logger
}

func NewInterviewerHandler(interviewerService service.InterviewerService, logger *slog.Logger) *InterviewerHandler {
	return &InterviewerHandler{
		interviewerService: interviewerService,
		validator:          validator.New(),
		logger:             logger,
	}
}

func (h *InterviewerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInterviewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	interviewer, err := h.interviewerService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, interviewer)
}

func (h *InterviewerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/interviewers/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid interviewer id", err.Error())
		return
	}

	interviewer, err := h.interviewerService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, interviewer)
}

func (h *InterviewerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	interviewers, err := h.interviewerService.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, interviewers)
}

func (h *InterviewerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/interviewers/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid interviewer id", err.Error())
		return
	}

	var req dto.UpdateInterviewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	interviewer, err := h.interviewerService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, interviewer)
}

func (h *InterviewerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/interviewers/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid interviewer id", err.Error())
		return
	}

	if err := h.interviewerService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
