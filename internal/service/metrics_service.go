package service

import (
	"context"
	"time"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// MetricsService определяет интерфейс бизнес-логики для дневных показателей
type MetricsService interface {
	Save(ctx context.Context, req *dto.SaveMetricsRequest) (*dto.MetricsResponse, error)
	GetByDate(ctx context.Context, metricDate string) (*dto.MetricsResponse, error)
	Summary(ctx context.Context, start, end string) (*dto.WeeklySummaryResponse, error)
}

type metricsService struct {
	metricsRepo repository.MetricsRepository
}

// NewMetricsService создаёт новый экземпляр сервиса
func NewMetricsService(metricsRepo repository.MetricsRepository) MetricsService {
	return &metricsService{metricsRepo: metricsRepo}
}

// Save сохраняет показатели за день. Повторное сохранение той же даты
// перезаписывает показатели и полностью заменяет детализацию.
// Нулевые строки детализации не сохраняются.
func (s *metricsService) Save(ctx context.Context, req *dto.SaveMetricsRequest) (*dto.MetricsResponse, error) {
	if !domain.ValidDate(req.MetricDate) {
		return nil, domain.ErrInvalidDate
	}
	if req.AppsReviewed < 0 || req.InterviewsScheduled < 0 || req.HiresConfirmed < 0 {
		return nil, domain.ErrNegativeCount
	}

	metric := &domain.DailyMetric{
		MetricDate:          req.MetricDate,
		AppsReviewed:        req.AppsReviewed,
		InterviewsScheduled: req.InterviewsScheduled,
		HiresConfirmed:      req.HiresConfirmed,
	}

	for _, b := range req.Breakdowns {
		if b.Count < 0 {
			return nil, domain.ErrNegativeCount
		}
		category := domain.BreakdownCategory(b.Category)
		if !domain.ValidBreakdown(category, b.Reason) {
			return nil, domain.ErrUnknownBreakdown
		}
		if b.Count == 0 {
			continue
		}
		metric.Breakdowns = append(metric.Breakdowns, domain.DailyBreakdown{
			Category: category,
			Reason:   b.Reason,
			Count:    b.Count,
		})
	}

	if err := s.metricsRepo.Save(ctx, metric); err != nil {
		return nil, err
	}

	return s.GetByDate(ctx, req.MetricDate)
}

func (s *metricsService) GetByDate(ctx context.Context, metricDate string) (*dto.MetricsResponse, error) {
	if !domain.ValidDate(metricDate) {
		return nil, domain.ErrInvalidDate
	}

	metric, err := s.metricsRepo.GetByDate(ctx, metricDate)
	if err != nil {
		return nil, err
	}

	resp := dto.ToMetricsResponse(metric)
	return &resp, nil
}

// Summary агрегирует показатели за диапазон дат со сводными строками
// Withdrew/Decline/NCNS. Пустые границы заменяются прошлой неделей
// с воскресенья по субботу.
func (s *metricsService) Summary(ctx context.Context, start, end string) (*dto.WeeklySummaryResponse, error) {
	if start == "" || end == "" {
		start, end = domain.LastWeekRange(time.Now())
	}
	if !domain.ValidDate(start) || !domain.ValidDate(end) {
		return nil, domain.ErrInvalidDate
	}

	totals, err := s.metricsRepo.SumRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	breakdowns, err := s.metricsRepo.BreakdownSumRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.WeeklySummaryResponse{
		StartDate:           start,
		EndDate:             end,
		AppsReviewed:        totals.AppsReviewed,
		InterviewsScheduled: totals.InterviewsScheduled,
		HiresConfirmed:      totals.HiresConfirmed,
	}

	sums := make(map[domain.BreakdownKey]int, len(breakdowns))
	for _, b := range breakdowns {
		key := domain.BreakdownKey{Category: b.Category, Reason: b.Reason}
		sums[key] += b.Total
		switch key.Rollup() {
		case domain.RollupWithdrew:
			resp.Withdrew += b.Total
		case domain.RollupNCNS:
			resp.NCNS += b.Total
		case domain.RollupDecline:
			resp.Decline += b.Total
		}
	}

	// порядок строк детализации повторяет фиксированную таксономию
	for _, key := range domain.FixedBreakdowns() {
		if total := sums[key]; total > 0 {
			resp.Breakdowns = append(resp.Breakdowns, dto.BreakdownEntry{
				Category: string(key.Category),
				Reason:   key.Reason,
				Count:    total,
			})
		}
	}

	return resp, nil
}
