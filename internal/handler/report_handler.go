package handler

import (
	"log/slog"
	"net/http"

	"github.com/hiring-pipeline-api/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
	logger        *slog.Logger
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

func (h *ReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.ReferralLeaderboard(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, rows)
}

func (h *ReportHandler) HiresByDepartment(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.HiresByDepartment(r.Context(), r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, rows)
}

func (h *ReportHandler) SearchByReferrer(w http.ResponseWriter, r *http.Request) {
	referrer := r.URL.Query().Get("q")
	if referrer == "" {
		respondError(h.logger, w, http.StatusBadRequest, "q query parameter is required", "")
		return
	}

	rows, err := h.reportService.SearchByReferrer(r.Context(), referrer)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, rows)
}

// Referrals делит кандидатов отчётного окна на пришедших по рекомендации
// и без неё. Без ?class_date= окно равно неделе перед ближайшим понедельником.
func (h *ReportHandler) Referrals(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Referrals(r.Context(), r.URL.Query().Get("class_date"))
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

// WeeklySnapshot отдаёт срез за прошлую неделю, при ?format=html
// дополнительно выгружает его в файл
func (h *ReportHandler) WeeklySnapshot(w http.ResponseWriter, r *http.Request) {
	exportHTML := r.URL.Query().Get("format") == "html"

	resp, err := h.reportService.WeeklySnapshot(r.Context(), exportHTML)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}
