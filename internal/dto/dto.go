package dto

import (
	"github.com/hiring-pipeline-api/internal/domain"
)

// CreateJobRequest - запрос на создание вакансии
type CreateJobRequest struct {
	Department     string  `json:"department" validate:"required,min=1,max=200"`
	Shift          *string `json:"shift" validate:"omitempty,max=100"`
	PayStructure   string  `json:"pay_structure" validate:"required,oneof=Hourly Salary"`
	EmploymentType string  `json:"employment_type" validate:"required,oneof=Full-Time Part-Time"`
}

// UpdateJobRequest - запрос на обновление вакансии
type UpdateJobRequest struct {
	Department     *string `json:"department" validate:"omitempty,min=1,max=200"`
	Shift          *string `json:"shift" validate:"omitempty,max=100"`
	PayStructure   *string `json:"pay_structure" validate:"omitempty,oneof=Hourly Salary"`
	EmploymentType *string `json:"employment_type" validate:"omitempty,oneof=Full-Time Part-Time"`
}

// JobResponse - ответ с данными вакансии
type JobResponse struct {
	ID               int64   `json:"id"`
	Department       string  `json:"department"`
	Shift            *string `json:"shift"`
	PayStructure     string  `json:"pay_structure"`
	EmploymentType   string  `json:"employment_type"`
	LinkedCandidates int64   `json:"linked_candidates"`
}

// CreateInterviewerRequest - запрос на создание интервьюера
type CreateInterviewerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateInterviewerRequest - запрос на переименование интервьюера
type UpdateInterviewerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// InterviewerResponse - ответ с данными интервьюера
type InterviewerResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	LinkedCandidates int64  `json:"linked_candidates"`
}

// CreateClassRequest - запрос на создание набора
type CreateClassRequest struct {
	ClassDate string `json:"class_date" validate:"required,datetime=2006-01-02"`
}

// UpdateClassRequest - запрос на изменение даты набора
type UpdateClassRequest struct {
	ClassDate string `json:"class_date" validate:"required,datetime=2006-01-02"`
}

// ClassResponse - ответ с данными набора
type ClassResponse struct {
	ID               int64  `json:"id"`
	ClassDate        string `json:"class_date"`
	LinkedCandidates int64  `json:"linked_candidates"`
}

// CreateCandidateRequest - запрос на создание кандидата
type CreateCandidateRequest struct {
	FirstName        string  `json:"first_name" validate:"required,min=1,max=200"`
	LastName         string  `json:"last_name" validate:"required,min=1,max=200"`
	PhoneNumber      string  `json:"phone_number" validate:"omitempty,max=30"`
	COCNumber        string  `json:"coc_number" validate:"omitempty,max=50"`
	InterviewDate    string  `json:"interview_date" validate:"omitempty,datetime=2006-01-02"`
	RehireDate       string  `json:"rehire_date" validate:"omitempty,datetime=2006-01-02"`
	OriginalTermDate string  `json:"original_term_date" validate:"omitempty,datetime=2006-01-02"`
	ReferredBy       string  `json:"referred_by" validate:"omitempty,max=200"`
	Notes            string  `json:"notes" validate:"omitempty,max=1000"`
	JobID            *int64  `json:"job_id" validate:"omitempty,min=1"`
	ClassID          *int64  `json:"class_id" validate:"omitempty,min=1"`
	InterviewerIDs   []int64 `json:"interviewer_ids" validate:"omitempty,dive,min=1"`
	IsSpanishOnly    bool    `json:"is_spanish_only"`

	Status          string `json:"candidate_status" validate:"omitempty,oneof=Pending Hired Rejected 'On Hold'"`
	ScreeningStatus string `json:"screening_status" validate:"omitempty,oneof=BG DS elink DS/BG"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,oneof=DS BG NCNS elink Other"`

	BGDSClear        bool   `json:"bg_ds_clear"`
	PreBoardComplete bool   `json:"pre_board_complete"`
	MyInfoReady      bool   `json:"myinfo_ready"`
	PNNumber         string `json:"pn_number" validate:"omitempty,max=50"`
	EUID             string `json:"euid" validate:"omitempty,max=50"`
}

// UpdateCandidateRequest - запрос на обновление кандидата.
// Незаполненные поля не изменяются.
type UpdateCandidateRequest struct {
	FirstName        *string  `json:"first_name" validate:"omitempty,min=1,max=200"`
	LastName         *string  `json:"last_name" validate:"omitempty,min=1,max=200"`
	PhoneNumber      *string  `json:"phone_number" validate:"omitempty,max=30"`
	COCNumber        *string  `json:"coc_number" validate:"omitempty,max=50"`
	InterviewDate    *string  `json:"interview_date" validate:"omitempty,datetime=2006-01-02|eq="`
	RehireDate       *string  `json:"rehire_date" validate:"omitempty,datetime=2006-01-02|eq="`
	OriginalTermDate *string  `json:"original_term_date" validate:"omitempty,datetime=2006-01-02|eq="`
	ReferredBy       *string  `json:"referred_by" validate:"omitempty,max=200"`
	Notes            *string  `json:"notes" validate:"omitempty,max=1000"`
	JobID            *int64   `json:"job_id"`
	ClassID          *int64   `json:"class_id"`
	InterviewerIDs   *[]int64 `json:"interviewer_ids" validate:"omitempty,dive,min=1"`
	IsSpanishOnly    *bool    `json:"is_spanish_only"`

	Status          *string `json:"candidate_status" validate:"omitempty,oneof=Pending Hired Rejected 'On Hold'"`
	ScreeningStatus *string `json:"screening_status" validate:"omitempty,oneof='' BG DS elink DS/BG"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty,oneof='' DS BG NCNS elink Other"`

	BGDSClear        *bool   `json:"bg_ds_clear"`
	PreBoardComplete *bool   `json:"pre_board_complete"`
	MyInfoReady      *bool   `json:"myinfo_ready"`
	PNNumber         *string `json:"pn_number" validate:"omitempty,max=50"`
	EUID             *string `json:"euid" validate:"omitempty,max=50"`
}

// CandidateResponse - ответ с данными кандидата
type CandidateResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	PhoneNumber      string  `json:"phone_number"`
	COCNumber        string  `json:"coc_number"`
	InterviewDate    string  `json:"interview_date"`
	RehireDate       string  `json:"rehire_date"`
	OriginalTermDate string  `json:"original_term_date"`
	ReferredBy       string  `json:"referred_by"`
	Notes            string  `json:"notes"`
	JobID            *int64  `json:"job_id"`
	ClassID          *int64  `json:"class_id"`
	ClassDate        *string `json:"class_date,omitempty"`
	Department       *string `json:"department,omitempty"`
	IsSpanishOnly    bool    `json:"is_spanish_only"`

	Status          string `json:"candidate_status"`
	ScreeningStatus string `json:"screening_status"`
	RejectionReason string `json:"rejection_reason"`

	BGDSClear             bool   `json:"bg_ds_clear"`
	PreBoardComplete      bool   `json:"pre_board_complete"`
	MyInfoReady           bool   `json:"myinfo_ready"`
	OrientationLetterSent bool   `json:"orientation_letter_sent"`
	PNNumber              string `json:"pn_number"`
	EUID                  string `json:"euid"`

	Cleared      bool                  `json:"cleared"`
	MissingItems []string              `json:"missing_items"`
	Interviewers []InterviewerResponse `json:"interviewers"`
}

// OrientationLettersResponse - результат пометки писем
type OrientationLettersResponse struct {
	Updated int64 `json:"updated"`
}

// RosterCandidate - строка сводной ведомости по наборам
type RosterCandidate struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Department   *string  `json:"department"`
	Status       string   `json:"candidate_status"`
	Cleared      bool     `json:"cleared"`
	MissingItems []string `json:"missing_items,omitempty"`
	FinalStatus  string   `json:"final_status,omitempty"`
}

// RosterClass - один набор в ведомости со списком кандидатов
type RosterClass struct {
	ID         int64             `json:"id"`
	ClassDate  string            `json:"class_date"`
	Candidates []RosterCandidate `json:"candidates"`
}

// RosterResponse - сводная ведомость по будущим или прошедшим наборам
type RosterResponse struct {
	View    string        `json:"view"`
	Classes []RosterClass `json:"classes"`
}

// BreakdownEntry - одна строка детализации в запросе или ответе
type BreakdownEntry struct {
	Category string `json:"category" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
	Count    int    `json:"count" validate:"min=0"`
}

// SaveMetricsRequest - запрос на сохранение показателей за день
type SaveMetricsRequest struct {
	MetricDate          string           `json:"metric_date" validate:"required,datetime=2006-01-02"`
	AppsReviewed        int              `json:"apps_reviewed" validate:"min=0"`
	InterviewsScheduled int              `json:"interviews_scheduled" validate:"min=0"`
	HiresConfirmed      int              `json:"hires_confirmed" validate:"min=0"`
	Breakdowns          []BreakdownEntry `json:"breakdowns" validate:"omitempty,dive"`
}

// MetricsResponse - показатели за день с детализацией
type MetricsResponse struct {
	ID                  int64            `json:"id"`
	MetricDate          string           `json:"metric_date"`
	AppsReviewed        int              `json:"apps_reviewed"`
	InterviewsScheduled int              `json:"interviews_scheduled"`
	HiresConfirmed      int              `json:"hires_confirmed"`
	Breakdowns          []BreakdownEntry `json:"breakdowns"`
}

// WeeklySummaryResponse - сводка показателей за диапазон дат.
// Breakdowns содержит суммы по парам (категория, причина) в порядке
// фиксированной таксономии, нулевые суммы опускаются.
type WeeklySummaryResponse struct {
	StartDate           string           `json:"start_date"`
	EndDate             string           `json:"end_date"`
	AppsReviewed        int              `json:"apps_reviewed"`
	InterviewsScheduled int              `json:"interviews_scheduled"`
	HiresConfirmed      int              `json:"hires_confirmed"`
	Withdrew            int              `json:"withdrew"`
	Decline             int              `json:"decline"`
	NCNS                int              `json:"ncns"`
	Breakdowns          []BreakdownEntry `json:"breakdowns"`
}

// LeaderboardRow - строка рейтинга рекомендателей
type LeaderboardRow struct {
	Referrer       string `json:"referrer"`
	TotalReferrals int64  `json:"total_referrals"`
}

// DepartmentHiresRow - число вышедших на работу по подразделению
type DepartmentHiresRow struct {
	Department string `json:"department"`
	Hires      int64  `json:"hires"`
}

// ReferralRow - кандидат в отчёте по рекомендациям
type ReferralRow struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department"`
	Status     string  `json:"candidate_status"`
	ReferredBy string  `json:"referred_by,omitempty"`
}

// ReferralsResponse - кандидаты окна отчёта, разделённые на пришедших
// по рекомендации и без неё
type ReferralsResponse struct {
	StartDate        string        `json:"start_date,omitempty"`
	EndDate          string        `json:"end_date,omitempty"`
	ClassDate        string        `json:"class_date,omitempty"`
	WithReferrals    []ReferralRow `json:"with_referrals"`
	WithoutReferrals []ReferralRow `json:"without_referrals"`
}

// SnapshotRow - строка недельного среза
type SnapshotRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SnapshotResponse - недельный срез показателей
type SnapshotResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []SnapshotRow `json:"rows"`
	FilePath  string        `json:"file_path,omitempty"`
}

// DashboardResponse - сводные показатели для главного экрана
type DashboardResponse struct {
	InterviewsThisMonth int64               `json:"interviews_this_month"`
	PendingCandidates   int64               `json:"pending_candidates"`
	ClearedForNextWeek  int64               `json:"cleared_for_next_week"`
	Hotlist             []CandidateResponse `json:"hotlist"`
}

// ImportResponse - результат импорта показателей из CSV
type ImportResponse struct {
	ImportedDays int      `json:"imported_days"`
	SkippedRows  int      `json:"skipped_rows"`
	Errors       []string `json:"errors,omitempty"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ToJobResponse преобразует модель вакансии в ответ
func ToJobResponse(j *domain.Job, linked int64) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Department:       j.Department,
		Shift:            j.Shift,
		PayStructure:     j.PayStructure,
		EmploymentType:   j.EmploymentType,
		LinkedCandidates: linked,
	}
}

// ToInterviewerResponse преобразует модель интервьюера в ответ
func ToInterviewerResponse(i *domain.Interviewer, linked int64) InterviewerResponse {
	return InterviewerResponse{ID: i.ID, Name: i.Name, LinkedCandidates: linked}
}

// ToClassResponse преобразует модель набора в ответ
func ToClassResponse(c *domain.HiringClass, linked int64) ClassResponse {
	return ClassResponse{ID: c.ID, ClassDate: c.ClassDate, LinkedCandidates: linked}
}

// ToCandidateResponse преобразует модель кандидата в ответ,
// включая вычисляемые поля допуска
func ToCandidateResponse(c *domain.Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		PhoneNumber:      c.PhoneNumber,
		COCNumber:        c.COCNumber,
		InterviewDate:    c.InterviewDate,
		RehireDate:       c.RehireDate,
		OriginalTermDate: c.OriginalTermDate,
		ReferredBy:       c.ReferredBy,
		Notes:            c.Notes,
		JobID:            c.JobID,
		ClassID:          c.ClassID,
		IsSpanishOnly:    c.IsSpanishOnly,

		Status:          string(c.Status),
		ScreeningStatus: string(c.ScreeningStatus),
		RejectionReason: string(c.RejectionReason),

		BGDSClear:             c.BGDSClear,
		PreBoardComplete:      c.PreBoardComplete,
		MyInfoReady:           c.MyInfoReady,
		OrientationLetterSent: c.OrientationLetterSent,
		PNNumber:              c.PNNumber,
		EUID:                  c.EUID,

		Cleared:      c.Cleared(),
		MissingItems: c.MissingItems(),
		Interviewers: make([]InterviewerResponse, 0, len(c.Interviewers)),
	}
	if c.Job != nil {
		resp.Department = &c.Job.Department
	}
	if c.Class != nil {
		resp.ClassDate = &c.Class.ClassDate
	}
	for idx := range c.Interviewers {
		resp.Interviewers = append(resp.Interviewers, ToInterviewerResponse(&c.Interviewers[idx], 0))
	}
	return resp
}

// ToMetricsResponse преобразует модель дневных показателей в ответ
func ToMetricsResponse(m *domain.DailyMetric) MetricsResponse {
	resp := MetricsResponse{
		ID:                  m.ID,
		MetricDate:          m.MetricDate,
		AppsReviewed:        m.AppsReviewed,
		InterviewsScheduled: m.InterviewsScheduled,
		HiresConfirmed:      m.HiresConfirmed,
		Breakdowns:          make([]BreakdownEntry, 0, len(m.Breakdowns)),
	}
	for _, b := range m.Breakdowns {
		resp.Breakdowns = append(resp.Breakdowns, BreakdownEntry{
			Category: string(b.Category),
			Reason:   b.Reason,
			Count:    b.Count,
		})
	}
	return resp
}
