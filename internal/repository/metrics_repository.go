package repository

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// MetricTotals - суммы дневных показателей за диапазон дат
type MetricTotals struct {
	AppsReviewed        int
	InterviewsScheduled int
	HiresConfirmed      int
}

// BreakdownTotal - сумма по одной паре (категория, причина) за диапазон дат
type BreakdownTotal struct {
	Category domain.BreakdownCategory
	Reason   string
	Total    int
}

// MetricsRepository определяет интерфейс для работы с дневными показателями
type MetricsRepository interface {
	GetByDate(ctx context.Context, metricDate string) (*domain.DailyMetric, error)
	Save(ctx context.Context, metric *domain.DailyMetric) error
	SumRange(ctx context.Context, start, end string) (*MetricTotals, error)
	BreakdownSumRange(ctx context.Context, start, end string) ([]BreakdownTotal, error)
}

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository создаёт новый экземпляр репозитория
func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) GetByDate(ctx context.Context, metricDate string) (*domain.DailyMetric, error) {
	var metric domain.DailyMetric
	err := r.db.WithContext(ctx).
		Preload("Breakdowns", func(db *gorm.DB) *gorm.DB {
			return db.Order("breakdown_id ASC")
		}).
		Where("metric_date = ?", metricDate).
		First(&metric).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMetricNotFound
		}
		return nil, err
	}
	return &metric, nil
}

// Save записывает показатели за день: существующая запись обновляется,
// детализация полностью заменяется. Всё выполняется в одной транзакции.
func (r *metricsRepository) Save(ctx context.Context, metric *domain.DailyMetric) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.DailyMetric
		err := tx.Where("metric_date = ?", metric.MetricDate).First(&existing).Error
		switch err {
		case nil:
			metric.ID = existing.ID
			updates := map[string]any{
				"apps_reviewed":        metric.AppsReviewed,
				"interviews_scheduled": metric.InterviewsScheduled,
				"hires_confirmed":      metric.HiresConfirmed,
			}
			if err := tx.Model(&domain.DailyMetric{}).Where("metric_id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
			breakdowns := metric.Breakdowns
			metric.Breakdowns = nil
			if err := tx.Create(metric).Error; err != nil {
				return err
			}
			metric.Breakdowns = breakdowns
		default:
			return err
		}

		if err := tx.Where("fk_metric_id = ?", metric.ID).Delete(&domain.DailyBreakdown{}).Error; err != nil {
			return err
		}
		for i := range metric.Breakdowns {
			metric.Breakdowns[i].ID = 0
			metric.Breakdowns[i].MetricID = metric.ID
		}
		if len(metric.Breakdowns) > 0 {
			if err := tx.Create(&metric.Breakdowns).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *metricsRepository) SumRange(ctx context.Context, start, end string) (*MetricTotals, error) {
	var totals MetricTotals
	err := r.db.WithContext(ctx).
		Model(&domain.DailyMetric{}).
		Select(
			"COALESCE(SUM(apps_reviewed), 0) AS apps_reviewed, " +
				"COALESCE(SUM(interviews_scheduled), 0) AS interviews_scheduled, " +
				"COALESCE(SUM(hires_confirmed), 0) AS hires_confirmed",
		).
		Where("metric_date BETWEEN ? AND ?", start, end).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *metricsRepository) BreakdownSumRange(ctx context.Context, start, end string) ([]BreakdownTotal, error) {
	var totals []BreakdownTotal
	query := `
		SELECT db.category, db.reason, SUM(db.count) AS total
		FROM "Daily_Breakdowns" db
		JOIN "Daily_Metrics" dm ON db.fk_metric_id = dm.metric_id
		WHERE dm.metric_date BETWEEN ? AND ?
		GROUP BY db.category, db.reason
	`
	err := r.db.WithContext(ctx).Raw(query, start, end).Scan(&totals).Error
	return totals, err
}
