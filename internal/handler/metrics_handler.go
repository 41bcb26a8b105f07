package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/importer"
	"github.com/hiring-pipeline-api/internal/service"
)

type MetricsHandler struct {
	metricsService service.MetricsService
	importer       *importer.Importer
	validator      *validator.Validate
	logger         *slog.Logger
}

func NewMetricsHandler(metricsService service.MetricsService, imp *importer.Importer, logger *slog.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		importer:       imp,
		validator:      validator.New(),
		logger:         logger,
	}
}

// Save сохраняет показатели за день, повторное сохранение перезаписывает
func (h *MetricsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	metrics, err := h.metricsService.Save(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, metrics)
}

func (h *MetricsHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respondError(h.logger, w, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	metrics, err := h.metricsService.GetByDate(r.Context(), date)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, metrics)
}

// Summary отдаёт сводку за диапазон дат, по умолчанию за прошлую неделю
func (h *MetricsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.metricsService.Summary(r.Context(), r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, summary)
}

// Import принимает CSV с историей показателей. Файл передаётся либо
// полем file в multipart-форме, либо телом запроса.
func (h *MetricsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var reader io.Reader = r.Body

	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		reader = file
	}

	result, err := h.importer.ImportCSV(r.Context(), reader)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}
