package service

import (
	"context"
	"strings"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// JobService определяет интерфейс бизнес-логики для вакансий
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.JobResponse, error)
	GetAll(ctx context.Context, department string) ([]dto.JobResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, id int64) error
	Departments(ctx context.Context) ([]string, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService создаёт новый экземпляр сервиса
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &domain.Job{
		Department:     strings.TrimSpace(req.Department),
		Shift:          req.Shift,
		PayStructure:   req.PayStructure,
		EmploymentType: req.EmploymentType,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	resp := dto.ToJobResponse(job, 0)
	return &resp, nil
}

func (s *jobService) GetByID(ctx context.Context, id int64) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.jobRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToJobResponse(job, linked)
	return &resp, nil
}

func (s *jobService) GetAll(ctx context.Context, department string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.GetAll(ctx, strings.TrimSpace(department))
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		linked, err := s.jobRepo.CountCandidates(ctx, jobs[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.ToJobResponse(&jobs[i], linked))
	}
	return responses, nil
}

func (s *jobService) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Department != nil {
		job.Department = strings.TrimSpace(*req.Department)
	}
	if req.Shift != nil {
		job.Shift = req.Shift
	}
	if req.PayStructure != nil {
		job.PayStructure = *req.PayStructure
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	linked, err := s.jobRepo.CountCandidates(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToJobResponse(job, linked)
	return &resp, nil
}

// Delete удаляет вакансию. У связанных кандидатов ссылка на вакансию
// обнуляется на уровне БД.
func (s *jobService) Delete(ctx context.Context, id int64) error {
	return s.jobRepo.Delete(ctx, id)
}

func (s *jobService) Departments(ctx context.Context) ([]string, error) {
	return s.jobRepo.Departments(ctx)
}
