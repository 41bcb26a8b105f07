package service

import (
	"context"
	"time"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// SnapshotWriter выгружает недельный срез во внешний файл
type SnapshotWriter interface {
	WriteHTML(start, end string, rows []dto.SnapshotRow) (string, error)
}

// ReportService определяет интерфейс аналитических отчётов
type ReportService interface {
	ReferralLeaderboard(ctx context.Context) ([]dto.LeaderboardRow, error)
	HiresByDepartment(ctx context.Context, start, end string) ([]dto.DepartmentHiresRow, error)
	SearchByReferrer(ctx context.Context, referrer string) ([]dto.ReferralRow, error)
	Referrals(ctx context.Context, classDate string) (*dto.ReferralsResponse, error)
	WeeklySnapshot(ctx context.Context, exportHTML bool) (*dto.SnapshotResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportService struct {
	reportRepo     repository.ReportRepository
	candidateRepo  repository.CandidateRepository
	metricsService MetricsService
	snapshotWriter SnapshotWriter
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(
	reportRepo repository.ReportRepository,
	candidateRepo repository.CandidateRepository,
	metricsService MetricsService,
	snapshotWriter SnapshotWriter,
) ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		candidateRepo:  candidateRepo,
		metricsService: metricsService,
		snapshotWriter: snapshotWriter,
	}
}

func (s *reportService) ReferralLeaderboard(ctx context.Context) ([]dto.LeaderboardRow, error) {
	leaders, err := s.reportRepo.ReferralLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.LeaderboardRow, 0, len(leaders))
	for _, l := range leaders {
		rows = append(rows, dto.LeaderboardRow{Referrer: l.ReferredBy, TotalReferrals: l.TotalReferrals})
	}
	return rows, nil
}

func (s *reportService) HiresByDepartment(ctx context.Context, start, end string) ([]dto.DepartmentHiresRow, error) {
	if start != "" && !domain.ValidDate(start) {
		return nil, domain.ErrInvalidDate
	}
	if end != "" && !domain.ValidDate(end) {
		return nil, domain.ErrInvalidDate
	}

	hires, err := s.reportRepo.HiresByDepartment(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DepartmentHiresRow, 0, len(hires))
	for _, h := range hires {
		rows = append(rows, dto.DepartmentHiresRow{Department: h.Department, Hires: h.Hires})
	}
	return rows, nil
}

func toReferralRow(c *domain.Candidate) dto.ReferralRow {
	row := dto.ReferralRow{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Status:     string(c.Status),
		ReferredBy: c.ReferredBy,
	}
	if c.Job != nil {
		row.Department = &c.Job.Department
	}
	return row
}

func (s *reportService) SearchByReferrer(ctx context.Context, referrer string) ([]dto.ReferralRow, error) {
	candidates, err := s.candidateRepo.SearchByReferrer(ctx, referrer)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReferralRow, 0, len(candidates))
	for i := range candidates {
		rows = append(rows, toReferralRow(&candidates[i]))
	}
	return rows, nil
}

// Referrals возвращает кандидатов отчётного окна, разделённых на
// пришедших по рекомендации и без неё. С параметром classDate берутся
// кандидаты указанного набора, без него кандидаты с интервью за семь
// дней перед ближайшим понедельником.
func (s *reportService) Referrals(ctx context.Context, classDate string) (*dto.ReferralsResponse, error) {
	var (
		candidates []domain.Candidate
		err        error
		resp       dto.ReferralsResponse
	)

	if classDate != "" {
		if !domain.ValidDate(classDate) {
			return nil, domain.ErrInvalidDate
		}
		candidates, err = s.candidateRepo.ByClassDate(ctx, classDate)
		resp.ClassDate = classDate
	} else {
		start, end := domain.ReferralWeekRange(time.Now())
		candidates, err = s.candidateRepo.InterviewedBetween(ctx, start, end)
		resp.StartDate = start
		resp.EndDate = end
	}
	if err != nil {
		return nil, err
	}

	resp.WithReferrals = make([]dto.ReferralRow, 0)
	resp.WithoutReferrals = make([]dto.ReferralRow, 0)
	for i := range candidates {
		row := toReferralRow(&candidates[i])
		if candidates[i].ReferredBy != "" {
			resp.WithReferrals = append(resp.WithReferrals, row)
		} else {
			row.ReferredBy = ""
			resp.WithoutReferrals = append(resp.WithoutReferrals, row)
		}
	}
	return &resp, nil
}

// WeeklySnapshot собирает срез за прошлую неделю с воскресенья по субботу.
// При exportHTML срез дополнительно выгружается в HTML-файл.
func (s *reportService) WeeklySnapshot(ctx context.Context, exportHTML bool) (*dto.SnapshotResponse, error) {
	start, end := domain.LastWeekRange(time.Now())

	summary, err := s.metricsService.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.SnapshotResponse{
		StartDate: start,
		EndDate:   end,
		Rows: []dto.SnapshotRow{
			{Label: "Apps Received", Count: summary.AppsReviewed},
			{Label: "Interviews", Count: summary.InterviewsScheduled},
			{Label: "Offers", Count: summary.HiresConfirmed},
			{Label: domain.RollupWithdrew, Count: summary.Withdrew},
			{Label: domain.RollupDecline, Count: summary.Decline},
			{Label: domain.RollupNCNS, Count: summary.NCNS},
		},
	}

	if exportHTML {
		path, err := s.snapshotWriter.WriteHTML(start, end, resp.Rows)
		if err != nil {
			return nil, err
		}
		resp.FilePath = path
	}

	return resp, nil
}

func (s *reportService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	interviews, err := s.candidateRepo.CountInterviewsInMonth(ctx, domain.MonthPrefix(now))
	if err != nil {
		return nil, err
	}

	pending, err := s.candidateRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	start, end := domain.NextWeekRange(now)
	nextWeek, err := s.candidateRepo.ListWithClassBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var cleared int64
	for i := range nextWeek {
		if nextWeek[i].Cleared() {
			cleared++
		}
	}

	hotlist, err := s.candidateRepo.Hotlist(ctx, now.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		InterviewsThisMonth: interviews,
		PendingCandidates:   pending,
		ClearedForNextWeek:  cleared,
		Hotlist:             make([]dto.CandidateResponse, 0, len(hotlist)),
	}
	for i := range hotlist {
		resp.Hotlist = append(resp.Hotlist, dto.ToCandidateResponse(&hotlist[i]))
	}
	return resp, nil
}
