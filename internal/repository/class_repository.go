package repository

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// ClassRepository определяет интерфейс для работы с наборами
type ClassRepository interface {
	Create(ctx context.Context, class *domain.HiringClass) error
	GetByID(ctx context.Context, id int64) (*domain.HiringClass, error)
	GetAll(ctx context.Context) ([]domain.HiringClass, error)
	Update(ctx context.Context, class *domain.HiringClass) error
	Delete(ctx context.Context, id int64) error
	ExistsByDate(ctx context.Context, classDate string, excludeID *int64) (bool, error)
	CountCandidates(ctx context.Context, classID int64) (int64, error)
	Roster(ctx context.Context, future bool, today string) ([]domain.HiringClass, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository создаёт новый экземпляр репозитория
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *domain.HiringClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) GetByID(ctx context.Context, id int64) (*domain.HiringClass, error) {
	var class domain.HiringClass
	err := r.db.WithContext(ctx).First(&class, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) GetAll(ctx context.Context) ([]domain.HiringClass, error) {
	var classes []domain.HiringClass
	err := r.db.WithContext(ctx).Order("class_date ASC").Find(&classes).Error
	return classes, err
}

func (r *classRepository) Update(ctx context.Context, class *domain.HiringClass) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.HiringClass{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

func (r *classRepository) ExistsByDate(ctx context.Context, classDate string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.HiringClass{}).
		Where("class_date = ?", classDate)
	if excludeID != nil {
		query = query.Where("class_id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *classRepository) CountCandidates(ctx context.Context, classID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("fk_class_id = ?", classID).
		Count(&count).Error
	return count, err
}

// Roster загружает наборы с кандидатами для сводной ведомости.
// Будущие наборы идут по возрастанию даты, прошедшие по убыванию.
func (r *classRepository) Roster(ctx context.Context, future bool, today string) ([]domain.HiringClass, error) {
	var classes []domain.HiringClass

	query := r.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("last_name ASC, first_name ASC")
		}).
		Preload("Candidates.Job")

	if future {
		query = query.Where("class_date >= ?", today).Order("class_date ASC")
	} else {
		query = query.Where("class_date < ?", today).Order("class_date DESC")
	}

	err := query.Find(&classes).Error
	return classes, err
}
