package repository

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// CandidateRepository определяет интерфейс для работы с кандидатами
type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	GetAll(ctx context.Context, search string) ([]domain.Candidate, error)
	Update(ctx context.Context, candidate *domain.Candidate) error
	ReplaceInterviewers(ctx context.Context, candidate *domain.Candidate, interviewers []domain.Interviewer) error
	Delete(ctx context.Context, id int64) error
	MarkOrientationLetters(ctx context.Context, ids []int64) (int64, error)

	CountPending(ctx context.Context) (int64, error)
	CountInterviewsInMonth(ctx context.Context, monthPrefix string) (int64, error)
	ListWithClassBetween(ctx context.Context, start, end string) ([]domain.Candidate, error)
	Hotlist(ctx context.Context, today string) ([]domain.Candidate, error)
	InterviewedBetween(ctx context.Context, start, end string) ([]domain.Candidate, error)
	ByClassDate(ctx context.Context, classDate string) ([]domain.Candidate, error)
	SearchByReferrer(ctx context.Context, referrer string) ([]domain.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository создаёт новый экземпляр репозитория
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create сохраняет кандидата вместе со связями с интервьюерами.
// GORM выполняет вставку и создание связей в одной транзакции.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	var candidate domain.Candidate
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Class").
		Preload("Interviewers").
		First(&candidate, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) GetAll(ctx context.Context, search string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	query := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Class").
		Preload("Interviewers").
		Order("last_name ASC, first_name ASC")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR phone_number LIKE ? OR coc_number LIKE ?"+
				" OR referred_by LIKE ? OR pn_number LIKE ? OR euid LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	err := query.Find(&candidates).Error
	return candidates, err
}

// Update сохраняет поля кандидата, не трогая связи с интервьюерами
func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	return r.db.WithContext(ctx).Omit("Interviewers", "Job", "Class").Save(candidate).Error
}

func (r *candidateRepository) ReplaceInterviewers(ctx context.Context, candidate *domain.Candidate, interviewers []domain.Interviewer) error {
	return r.db.WithContext(ctx).
		Model(candidate).
		Association("Interviewers").
		Replace(interviewers)
}

func (r *candidateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM "Candidate_Interviewers" WHERE fk_candidate_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Candidate{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCandidateNotFound
		}
		return nil
	})
}

func (r *candidateRepository) MarkOrientationLetters(ctx context.Context, ids []int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("candidate_id IN ?", ids).
		Update("orientation_letter_sent", true)
	return result.RowsAffected, result.Error
}

func (r *candidateRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("candidate_status = ?", domain.StatusPending).
		Count(&count).Error
	return count, err
}

func (r *candidateRepository) CountInterviewsInMonth(ctx context.Context, monthPrefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("candidate_status != ?", domain.StatusRejected).
		Where("interview_date LIKE ?", monthPrefix+"%").
		Count(&count).Error
	return count, err
}

func (r *candidateRepository) ListWithClassBetween(ctx context.Context, start, end string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := r.db.WithContext(ctx).
		Joins(`JOIN "Hiring_Classes" hc ON hc.class_id = "Candidates".fk_class_id`).
		Where("hc.class_date BETWEEN ? AND ?", start, end).
		Preload("Class").
		Find(&candidates).Error
	return candidates, err
}

// Hotlist возвращает ожидающих кандидатов с будущей датой старта
func (r *candidateRepository) Hotlist(ctx context.Context, today string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := r.db.WithContext(ctx).
		Joins(`JOIN "Hiring_Classes" hc ON hc.class_id = "Candidates".fk_class_id`).
		Where("candidate_status = ?", domain.StatusPending).
		Where("hc.class_date >= ?", today).
		Order(`hc.class_date ASC, "Candidates".last_name ASC`).
		Preload("Job").
		Preload("Class").
		Find(&candidates).Error
	return candidates, err
}

// InterviewedBetween возвращает кандидатов с интервью в диапазоне дат
// независимо от наличия рекомендации
func (r *candidateRepository) InterviewedBetween(ctx context.Context, start, end string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := r.db.WithContext(ctx).
		Where("interview_date BETWEEN ? AND ?", start, end).
		Order("last_name ASC, first_name ASC").
		Preload("Job").
		Find(&candidates).Error
	return candidates, err
}

func (r *candidateRepository) ByClassDate(ctx context.Context, classDate string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	err := r.db.WithContext(ctx).
		Joins(`JOIN "Hiring_Classes" hc ON hc.class_id = "Candidates".fk_class_id`).
		Where("hc.class_date = ?", classDate).
		Order("last_name ASC, first_name ASC").
		Preload("Job").
		Find(&candidates).Error
	return candidates, err
}

func (r *candidateRepository) SearchByReferrer(ctx context.Context, referrer string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	// LOWER с обеих сторон, LIKE в postgres чувствителен к регистру
	err := r.db.WithContext(ctx).
		Where("LOWER(referred_by) LIKE LOWER(?)", "%"+referrer+"%").
		Order("last_name ASC, first_name ASC").
		Preload("Job").
		Find(&candidates).Error
	return candidates, err
}
