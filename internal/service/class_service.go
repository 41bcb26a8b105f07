package service

import (
	"context"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// ClassService определяет интерфейс бизнес-логики для наборов
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error)
	GetAll(ctx context.Context) ([]dto.ClassResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id int64) error
}

type classService struct {
	classRepo repository.ClassRepository
}

// NewClassService создаёт новый экземпляр сервиса
func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	exists, err := s.classRepo.ExistsByDate(ctx, req.ClassDate, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateClassDate
	}

	class := &domain.HiringClass{ClassDate: req.ClassDate}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	resp := dto.ToClassResponse(class, 0)
	return &resp, nil
}

func (s *classService) GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.classRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToClassResponse(class, linked)
	return &resp, nil
}

func (s *classService) GetAll(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		linked, err := s.classRepo.CountCandidates(ctx, classes[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.ToClassResponse(&classes[i], linked))
	}
	return responses, nil
}

func (s *classService) Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.classRepo.ExistsByDate(ctx, req.ClassDate, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateClassDate
	}

	class.ClassDate = req.ClassDate
	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	linked, err := s.classRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToClassResponse(class, linked)
	return &resp, nil
}

// Delete удаляет набор. У кандидатов набора ссылка обнуляется на уровне БД.
func (s *classService) Delete(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}
