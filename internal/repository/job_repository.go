package repository

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// JobRepository определяет интерфейс для работы с вакансиями
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetAll(ctx context.Context, department string) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error
	Departments(ctx context.Context) ([]string, error)
	CountCandidates(ctx context.Context, jobID int64) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository создаёт новый экземпляр репозитория
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) GetAll(ctx context.Context, department string) ([]domain.Job, error) {
	var jobs []domain.Job
	query := r.db.WithContext(ctx).Order("department ASC, shift ASC")
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Departments(ctx context.Context) ([]string, error) {
	var departments []string
	err := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Distinct("department").
		Order("department ASC").
		Pluck("department", &departments).Error
	return departments, err
}

func (r *jobRepository) CountCandidates(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("fk_job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
