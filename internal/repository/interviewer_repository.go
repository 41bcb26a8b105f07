package repository

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// InterviewerRepository определяет интерфейс для работы с интервьюерами
type InterviewerRepository interface {
	Create(ctx context.Context, interviewer *domain.Interviewer) error
	GetByID(ctx context.Context, id int64) (*domain.Interviewer, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Interviewer, error)
	GetAll(ctx context.Context) ([]domain.Interviewer, error)
	Update(ctx context.Context, interviewer *domain.Interviewer) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	CountCandidates(ctx context.Context, interviewerID int64) (int64, error)
}

type interviewerRepository struct {
	db *gorm.DB
}

// NewInterviewerRepository создаёт новый экземпляр репозитория
func NewInterviewerRepository(db *gorm.DB) InterviewerRepository {
	return &interviewerRepository{db: db}
}

func (r *interviewerRepository) Create(ctx context.Context, interviewer *domain.Interviewer) error {
	return r.db.WithContext(ctx).Create(interviewer).Error
}

func (r *interviewerRepository) GetByID(ctx context.Context, id int64) (*domain.Interviewer, error) {
	var interviewer domain.Interviewer
	err := r.db.WithContext(ctx).First(&interviewer, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInterviewerNotFound
		}
		return nil, err
	}
	return &interviewer, nil
}

func (r *interviewerRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Interviewer, error) {
	var interviewers []domain.Interviewer
	err := r.db.WithContext(ctx).
		Where("interviewer_id IN ?", ids).
		Find(&interviewers).Error
	return interviewers, err
}

func (r *interviewerRepository) GetAll(ctx context.Context) ([]domain.Interviewer, error) {
	var interviewers []domain.Interviewer
	err := r.db.WithContext(ctx).Order("interviewer_name ASC").Find(&interviewers).Error
	return interviewers, err
}

func (r *interviewerRepository) Update(ctx context.Context, interviewer *domain.Interviewer) error {
	return r.db.WithContext(ctx).Save(interviewer).Error
}

func (r *interviewerRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.Interviewer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInterviewerNotFound
		}
		// Связи с кандидатами удаляются вместе с интервьюером
		return tx.Exec(`DELETE FROM "Candidate_Interviewers" WHERE fk_interviewer_id = ?`, id).Error
	})
	return err
}

func (r *interviewerRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.Interviewer{}).
		Where("interviewer_name = ?", name)
	if excludeID != nil {
		query = query.Where("interviewer_id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *interviewerRepository) CountCandidates(ctx context.Context, interviewerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("Candidate_Interviewers").
		Where("fk_interviewer_id = ?", interviewerID).
		Count(&count).Error
	return count, err
}
