package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hiring-pipeline-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux    *http.ServeMux
	logger *slog.Logger

	jobHandler         *JobHandler
	interviewerHandler *InterviewerHandler
	classHandler       *ClassHandler
	candidateHandler   *CandidateHandler
	metricsHandler     *MetricsHandler
	reportHandler      *ReportHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	jobHandler *JobHandler,
	interviewerHandler *InterviewerHandler,
	classHandler *ClassHandler,
	candidateHandler *CandidateHandler,
	metricsHandler *MetricsHandler,
	reportHandler *ReportHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		logger:             logger,
		jobHandler:         jobHandler,
		interviewerHandler: interviewerHandler,
		classHandler:       classHandler,
		candidateHandler:   candidateHandler,
		metricsHandler:     metricsHandler,
		reportHandler:      reportHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/jobs/", r.jobsRouter)
	r.mux.HandleFunc("/interviewers/", r.interviewersRouter)
	r.mux.HandleFunc("/classes/", r.classesRouter)
	r.mux.HandleFunc("/candidates/", r.candidatesRouter)
	r.mux.HandleFunc("/metrics/", r.metricsRouter)
	r.mux.HandleFunc("/reports/", r.reportsRouter)

	r.mux.HandleFunc("/dashboard", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		r.reportHandler.Dashboard(w, req)
	})

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func trimRoute(path, prefix string) string {
	path = strings.TrimPrefix(path, prefix)
	return strings.Trim(path, "/")
}

// jobsRouter обрабатывает все запросы к /jobs/
func (r *Router) jobsRouter(w http.ResponseWriter, req *http.Request) {
	path := trimRoute(req.URL.Path, "/jobs")

	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.jobHandler.Create(w, req)
		case http.MethodGet:
			r.jobHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	// GET /jobs/departments - список уникальных подразделений
	if path == "departments" {
		if req.Method == http.MethodGet {
			r.jobHandler.Departments(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		// /jobs/{id}
		switch req.Method {
		case http.MethodGet:
			r.jobHandler.GetByID(w, req)
		case http.MethodPut:
			r.jobHandler.Update(w, req)
		case http.MethodDelete:
			r.jobHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// interviewersRouter обрабатывает все запросы к /interviewers/
func (r *Router) interviewersRouter(w http.ResponseWriter, req *http.Request) {
	path := trimRoute(req.URL.Path, "/interviewers")

	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.interviewerHandler.Create(w, req)
		case http.MethodGet:
			r.interviewerHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.interviewerHandler.GetByID(w, req)
		case http.MethodPut:
			r.interviewerHandler.Update(w, req)
		case http.MethodDelete:
			r.interviewerHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// classesRouter обрабатывает все запросы к /classes/
func (r *Router) classesRouter(w http.ResponseWriter, req *http.Request) {
	path := trimRoute(req.URL.Path, "/classes")

	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.classHandler.Create(w, req)
		case http.MethodGet:
			r.classHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.classHandler.GetByID(w, req)
		case http.MethodPut:
			r.classHandler.Update(w, req)
		case http.MethodDelete:
			r.classHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// candidatesRouter обрабатывает все запросы к /candidates/
func (r *Router) candidatesRouter(w http.ResponseWriter, req *http.Request) {
	path := trimRoute(req.URL.Path, "/candidates")

	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.candidateHandler.Create(w, req)
		case http.MethodGet:
			r.candidateHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	// GET /candidates/roster - сводная ведомость по наборам
	if path == "roster" {
		if req.Method == http.MethodGet {
			r.candidateHandler.Roster(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	// POST /candidates/orientation-letters - пометка отправленных писем
	if path == "orientation-letters" {
		if req.Method == http.MethodPost {
			r.candidateHandler.OrientationLetters(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		switch req.Method {
		case http.MethodGet:
			r.candidateHandler.GetByID(w, req)
		case http.MethodPut:
			r.candidateHandler.Update(w, req)
		case http.MethodDelete:
			r.candidateHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// metricsRouter обрабатывает все запросы к /metrics/
func (r *Router) metricsRouter(w http.ResponseWriter, req *http.Request) {
	path := trimRoute(req.URL.Path, "/metrics")

	switch path {
	case "":
		switch req.Method {
		case http.MethodPost:
			r.metricsHandler.Save(w, req)
		case http.MethodGet:
			r.metricsHandler.GetByDate(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	case "summary":
		if req.Method == http.MethodGet {
			r.metricsHandler.Summary(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	case "import":
		if req.Method == http.MethodPost {
			r.metricsHandler.Import(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// reportsRouter обрабатывает все запросы к /reports/
func (r *Router) reportsRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch trimRoute(req.URL.Path, "/reports") {
	case "leaderboard":
		r.reportHandler.Leaderboard(w, req)
	case "hires-by-department":
		r.reportHandler.HiresByDepartment(w, req)
	case "referrer-search":
		r.reportHandler.SearchByReferrer(w, req)
	case "referrals":
		r.reportHandler.Referrals(w, req)
	case "weekly-snapshot":
		r.reportHandler.WeeklySnapshot(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}
