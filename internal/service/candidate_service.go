package service

import (
	"context"
	"strings"
	"time"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/repository"
)

// CandidateService определяет интерфейс бизнес-логики для кандидатов
type CandidateService interface {
	Create(ctx context.Context, req *dto.CreateCandidateRequest) (*domain.Candidate, error)
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	GetAll(ctx context.Context, search string) ([]domain.Candidate, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) (*domain.Candidate, error)
	Delete(ctx context.Context, id int64) error
	Roster(ctx context.Context, view string) (*dto.RosterResponse, error)
	MarkOrientationLetters(ctx context.Context) (int64, error)
}

type candidateService struct {
	candidateRepo   repository.CandidateRepository
	jobRepo         repository.JobRepository
	classRepo       repository.ClassRepository
	interviewerRepo repository.InterviewerRepository
}

// NewCandidateService создаёт новый экземпляр сервиса
func NewCandidateService(
	candidateRepo repository.CandidateRepository,
	jobRepo repository.JobRepository,
	classRepo repository.ClassRepository,
	interviewerRepo repository.InterviewerRepository,
) CandidateService {
	return &candidateService{
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		classRepo:       classRepo,
		interviewerRepo: interviewerRepo,
	}
}

// resolveInterviewers загружает интервьюеров по списку идентификаторов
// и проверяет, что все они существуют
func (s *candidateService) resolveInterviewers(ctx context.Context, ids []int64) ([]domain.Interviewer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	interviewers, err := s.interviewerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(interviewers) != len(ids) {
		return nil, domain.ErrInterviewerNotFound
	}
	return interviewers, nil
}

func (s *candidateService) checkRefs(ctx context.Context, jobID, classID *int64) error {
	if jobID != nil {
		if _, err := s.jobRepo.GetByID(ctx, *jobID); err != nil {
			return err
		}
	}
	if classID != nil {
		if _, err := s.classRepo.GetByID(ctx, *classID); err != nil {
			return err
		}
	}
	return nil
}

func (s *candidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*domain.Candidate, error) {
	status := domain.CandidateStatus(req.Status)
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) ||
		!domain.ValidScreeningStatus(domain.ScreeningStatus(req.ScreeningStatus)) ||
		!domain.ValidRejectionReason(domain.RejectionReason(req.RejectionReason)) {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.checkRefs(ctx, req.JobID, req.ClassID); err != nil {
		return nil, err
	}

	interviewers, err := s.resolveInterviewers(ctx, req.InterviewerIDs)
	if err != nil {
		return nil, err
	}

	candidate := &domain.Candidate{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		PhoneNumber:      strings.TrimSpace(req.PhoneNumber),
		COCNumber:        strings.TrimSpace(req.COCNumber),
		InterviewDate:    req.InterviewDate,
		RehireDate:       req.RehireDate,
		OriginalTermDate: req.OriginalTermDate,
		ReferredBy:       strings.TrimSpace(req.ReferredBy),
		Notes:            req.Notes,
		JobID:            req.JobID,
		ClassID:          req.ClassID,
		IsSpanishOnly:    req.IsSpanishOnly,

		Status:          status,
		ScreeningStatus: domain.ScreeningStatus(req.ScreeningStatus),
		RejectionReason: domain.RejectionReason(req.RejectionReason),

		BGDSClear:        req.BGDSClear,
		PreBoardComplete: req.PreBoardComplete,
		MyInfoReady:      req.MyInfoReady,
		PNNumber:         strings.TrimSpace(req.PNNumber),
		EUID:             strings.TrimSpace(req.EUID),

		Interviewers: interviewers,
	}

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	return s.candidateRepo.GetByID(ctx, candidate.ID)
}

func (s *candidateService) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	return s.candidateRepo.GetByID(ctx, id)
}

func (s *candidateService) GetAll(ctx context.Context, search string) ([]domain.Candidate, error) {
	return s.candidateRepo.GetAll(ctx, strings.TrimSpace(search))
}

// Update изменяет только переданные поля. Нулевой идентификатор вакансии
// или набора снимает соответствующую привязку.
func (s *candidateService) Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) (*domain.Candidate, error) {
	if req.Status != nil && !domain.ValidStatus(domain.CandidateStatus(*req.Status)) {
		return nil, domain.ErrInvalidStatus
	}
	if req.ScreeningStatus != nil && !domain.ValidScreeningStatus(domain.ScreeningStatus(*req.ScreeningStatus)) {
		return nil, domain.ErrInvalidStatus
	}
	if req.RejectionReason != nil && !domain.ValidRejectionReason(domain.RejectionReason(*req.RejectionReason)) {
		return nil, domain.ErrInvalidStatus
	}

	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		candidate.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		candidate.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.PhoneNumber != nil {
		candidate.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.COCNumber != nil {
		candidate.COCNumber = strings.TrimSpace(*req.COCNumber)
	}
	if req.InterviewDate != nil {
		candidate.InterviewDate = *req.InterviewDate
	}
	if req.RehireDate != nil {
		candidate.RehireDate = *req.RehireDate
	}
	if req.OriginalTermDate != nil {
		candidate.OriginalTermDate = *req.OriginalTermDate
	}
	if req.ReferredBy != nil {
		candidate.ReferredBy = strings.TrimSpace(*req.ReferredBy)
	}
	if req.Notes != nil {
		candidate.Notes = *req.Notes
	}
	if req.IsSpanishOnly != nil {
		candidate.IsSpanishOnly = *req.IsSpanishOnly
	}

	if req.JobID != nil {
		if *req.JobID == 0 {
			candidate.JobID = nil
			candidate.Job = nil
		} else {
			if _, err := s.jobRepo.GetByID(ctx, *req.JobID); err != nil {
				return nil, err
			}
			candidate.JobID = req.JobID
		}
	}
	if req.ClassID != nil {
		if *req.ClassID == 0 {
			candidate.ClassID = nil
			candidate.Class = nil
		} else {
			if _, err := s.classRepo.GetByID(ctx, *req.ClassID); err != nil {
				return nil, err
			}
			candidate.ClassID = req.ClassID
		}
	}

	if req.Status != nil {
		candidate.Status = domain.CandidateStatus(*req.Status)
	}
	if req.ScreeningStatus != nil {
		candidate.ScreeningStatus = domain.ScreeningStatus(*req.ScreeningStatus)
	}
	if req.RejectionReason != nil {
		candidate.RejectionReason = domain.RejectionReason(*req.RejectionReason)
	}

	if req.BGDSClear != nil {
		candidate.BGDSClear = *req.BGDSClear
	}
	if req.PreBoardComplete != nil {
		candidate.PreBoardComplete = *req.PreBoardComplete
	}
	if req.MyInfoReady != nil {
		candidate.MyInfoReady = *req.MyInfoReady
	}
	if req.PNNumber != nil {
		candidate.PNNumber = strings.TrimSpace(*req.PNNumber)
	}
	if req.EUID != nil {
		candidate.EUID = strings.TrimSpace(*req.EUID)
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	if req.InterviewerIDs != nil {
		interviewers, err := s.resolveInterviewers(ctx, *req.InterviewerIDs)
		if err != nil {
			return nil, err
		}
		if interviewers == nil {
			interviewers = []domain.Interviewer{}
		}
		if err := s.candidateRepo.ReplaceInterviewers(ctx, candidate, interviewers); err != nil {
			return nil, err
		}
	}

	return s.candidateRepo.GetByID(ctx, id)
}

func (s *candidateService) Delete(ctx context.Context, id int64) error {
	return s.candidateRepo.Delete(ctx, id)
}

// Roster собирает сводную ведомость по наборам. Для будущих наборов
// показывается готовность к старту, для прошедших итоговый статус.
func (s *candidateService) Roster(ctx context.Context, view string) (*dto.RosterResponse, error) {
	futureView := view != "past"
	if futureView {
		view = "future"
	}

	today := domain.Today()
	classes, err := s.classRepo.Roster(ctx, futureView, today)
	if err != nil {
		return nil, err
	}

	resp := &dto.RosterResponse{View: view, Classes: make([]dto.RosterClass, 0, len(classes))}
	for i := range classes {
		class := dto.RosterClass{
			ID:         classes[i].ID,
			ClassDate:  classes[i].ClassDate,
			Candidates: make([]dto.RosterCandidate, 0, len(classes[i].Candidates)),
		}
		// дата набора, а не запрошенный вид, определяет классификацию
		isFuture := domain.IsFutureClass(classes[i].ClassDate, today)
		for j := range classes[i].Candidates {
			c := &classes[i].Candidates[j]
			row := dto.RosterCandidate{
				ID:        c.ID,
				FirstName: c.FirstName,
				LastName:  c.LastName,
				Status:    string(c.Status),
				Cleared:   c.Cleared(),
			}
			if c.Job != nil {
				row.Department = &c.Job.Department
			}
			if isFuture {
				row.MissingItems = c.MissingItems()
			} else if !c.Started() {
				row.FinalStatus = c.FinalStatus()
			}
			class.Candidates = append(class.Candidates, row)
		}
		resp.Classes = append(resp.Classes, class)
	}
	return resp, nil
}

// MarkOrientationLetters помечает письма о выходе отправленными у всех
// полностью допущенных кандидатов с набором на следующей неделе
func (s *candidateService) MarkOrientationLetters(ctx context.Context) (int64, error) {
	start, end := domain.NextWeekRange(time.Now())

	candidates, err := s.candidateRepo.ListWithClassBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	var ids []int64
	for i := range candidates {
		if candidates[i].Cleared() {
			ids = append(ids, candidates[i].ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	return s.candidateRepo.MarkOrientationLetters(ctx, ids)
}
