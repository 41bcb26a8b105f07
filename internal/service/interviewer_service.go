package service

import (
	"context"
	"strings"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// InterviewerService определяет интерфейс бизнес-логики для интервьюеров
type InterviewerService interface {
	Create(ctx context.Context, req *dto.CreateInterviewerRequest) (*dto.InterviewerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.InterviewerResponse, error)
	GetAll(ctx context.Context) ([]dto.InterviewerResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInterviewerRequest) (*dto.InterviewerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type interviewerService struct {
	interviewerRepo repository.InterviewerRepository
}

// NewInterviewerService создаёт новый экземпляр сервиса
func NewInterviewerService(interviewerRepo repository.InterviewerRepository) InterviewerService {
	return &interviewerService{interviewerRepo: interviewerRepo}
}

func (s *interviewerService) Create(ctx context.Context, req *dto.CreateInterviewerRequest) (*dto.InterviewerResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.interviewerRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateInterviewerName
	}

	interviewer := &domain.Interviewer{Name: name}
	if err := s.interviewerRepo.Create(ctx, interviewer); err != nil {
		return nil, err
	}

	resp := dto.ToInterviewerResponse(interviewer, 0)
	return &resp, nil
}

func (s *interviewerService) GetByID(ctx context.Context, id int64) (*dto.InterviewerResponse, error) {
	interviewer, err := s.interviewerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.interviewerRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToInterviewerResponse(interviewer, linked)
	return &resp, nil
}

func (s *interviewerService) GetAll(ctx context.Context) ([]dto.InterviewerResponse, error) {
	interviewers, err := s.interviewerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InterviewerResponse, 0, len(interviewers))
	for i := range interviewers {
		linked, err := s.interviewerRepo.CountCandidates(ctx, interviewers[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.ToInterviewerResponse(&interviewers[i], linked))
	}
	return responses, nil
}

func (s *interviewerService) Update(ctx context.Context, id int64, req *dto.UpdateInterviewerRequest) (*dto.InterviewerResponse, error) {
	interviewer, err := s.interviewerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.interviewerRepo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateInterviewerName
	}

	interviewer.Name = name
	if err := s.interviewerRepo.Update(ctx, interviewer); err != nil {
		return nil, err
	}

	linked, err := s.interviewerRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToInterviewerResponse(interviewer, linked)
	return &resp, nil
}

// Delete удаляет интервьюера вместе со связями с кандидатами
func (s *interviewerService) Delete(ctx context.Context, id int64) error {
	return s.interviewerRepo.Delete(ctx, id)
}
