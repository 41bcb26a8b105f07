package repository

import (
	"context"

	"gorm.io/gorm"
)

// ReferralLeader - строка рейтинга рекомендателей
type ReferralLeader struct {
	ReferredBy     string
	TotalReferrals int64
}

// DepartmentHires - число вышедших на работу по подразделению
type DepartmentHires struct {
	Department string
	Hires      int64
}

// ReportRepository определяет интерфейс для агрегирующих отчётных запросов
type ReportRepository interface {
	ReferralLeaderboard(ctx context.Context) ([]ReferralLeader, error)
	HiresByDepartment(ctx context.Context, start, end string) ([]DepartmentHires, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ReferralLeaderboard(ctx context.Context) ([]ReferralLeader, error) {
	var leaders []ReferralLeader
	query := `
		SELECT referred_by, COUNT(*) AS total_referrals
		FROM "Candidates"
		WHERE referred_by IS NOT NULL AND referred_by != ''
		GROUP BY referred_by
		ORDER BY COUNT(*) DESC
	`
	err := r.db.WithContext(ctx).Raw(query).Scan(&leaders).Error
	return leaders, err
}

// HiresByDepartment считает вышедших на работу по подразделениям.
// Пустые границы диапазона отключают соответствующий фильтр по дате интервью.
func (r *reportRepository) HiresByDepartment(ctx context.Context, start, end string) ([]DepartmentHires, error) {
	var hires []DepartmentHires

	query := `
		SELECT j.department, COUNT(*) AS hires
		FROM "Candidates" c
		JOIN "Jobs" j ON c.fk_job_id = j.job_id
		WHERE c.candidate_status = 'Hired'
	`
	args := []any{}
	if start != "" {
		query += " AND c.interview_date >= ?"
		args = append(args, start)
	}
	if end != "" {
		query += " AND c.interview_date <= ?"
		args = append(args, end)
	}
	query += " GROUP BY j.department ORDER BY COUNT(*) DESC"

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&hires).Error
	return hires, err
}
