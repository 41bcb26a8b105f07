package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/service"
)

type CandidateHandler struct {
	candidateService service.CandidateService
	validator        *validator.Validate
	logger           *slog.Logger
}

func NewCandidateHandler(candidateService service.CandidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
		validator:        validator.New(),
		logger:           logger,
	}
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	candidate, err := h.candidateService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, dto.ToCandidateResponse(candidate))
}

func (h *CandidateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/candidates/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid candidate id", err.Error())
		return
	}

	candidate, err := h.candidateService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.ToCandidateResponse(candidate))
}

// GetAll отдаёт кандидатов, при ?search= с фильтром по имени,
// телефону, COC-номеру и рекомендателю
func (h *CandidateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.candidateService.GetAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	responses := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, dto.ToCandidateResponse(&candidates[i]))
	}
	respondJSON(h.logger, w, http.StatusOK, responses)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/candidates/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid candidate id", err.Error())
		return
	}

	var req dto.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	candidate, err := h.candidateService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.ToCandidateResponse(candidate))
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/candidates/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid candidate id", err.Error())
		return
	}

	if err := h.candidateService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Roster отдаёт сводную ведомость по наборам, ?view=future|past
func (h *CandidateHandler) Roster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.candidateService.Roster(r.Context(), r.URL.Query().Get("view"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, roster)
}

// OrientationLetters помечает письма о выходе отправленными у допущенных
// кандидатов со стартом на следующей неделе
func (h *CandidateHandler) OrientationLetters(w http.ResponseWriter, r *http.Request) {
	updated, err := h.candidateService.MarkOrientationLetters(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.OrientationLettersResponse{Updated: updated})
}
