package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит ошибки бизнес-логики в HTTP статусы
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		respondError(logger, w, http.StatusNotFound, "job not found", "")
	case errors.Is(err, domain.ErrInterviewerNotFound):
		respondError(logger, w, http.StatusNotFound, "interviewer not found", "")
	case errors.Is(err, domain.ErrClassNotFound):
		respondError(logger, w, http.StatusNotFound, "hiring class not found", "")
	case errors.Is(err, domain.ErrCandidateNotFound):
		respondError(logger, w, http.StatusNotFound, "candidate not found", "")
	case errors.Is(err, domain.ErrMetricNotFound):
		respondError(logger, w, http.StatusNotFound, "no metrics recorded for this date", "")
	case errors.Is(err, domain.ErrDuplicateInterviewerName):
		respondError(logger, w, http.StatusConflict, "interviewer with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicateClassDate):
		respondError(logger, w, http.StatusConflict, "hiring class with this date already exists", "")
	case errors.Is(err, domain.ErrInvalidDate):
		respondError(logger, w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		respondError(logger, w, http.StatusBadRequest, "unknown candidate status value", "")
	case errors.Is(err, domain.ErrNegativeCount):
		respondError(logger, w, http.StatusBadRequest, "counts must be non-negative integers", "")
	case errors.Is(err, domain.ErrUnknownBreakdown):
		respondError(logger, w, http.StatusBadRequest, "unknown breakdown category/reason pair", "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

// extractID выделяет числовой идентификатор из пути вида /prefix/{id}
func extractID(r *http.Request, prefix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(parts[0], 10, 64)
}
