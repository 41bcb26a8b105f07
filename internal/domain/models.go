package domain

// Job представляет вакансию: подразделение, смена и условия занятости
type Job struct {
	ID             int64   `json:"id" gorm:"column:job_id;primaryKey;autoIncrement"`
	Department     string  `json:"department" gorm:"type:varchar(200);not null"`
	Shift          *string `json:"shift" gorm:"type:varchar(100)"`
	PayStructure   string  `json:"pay_structure" gorm:"column:pay_structure;type:varchar(20);not null"`
	EmploymentType string  `json:"employment_type" gorm:"column:employment_type;type:varchar(20);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Job) TableName() string {
	return "Jobs"
}

// Interviewer представляет интервьюера
type Interviewer struct {
	ID   int64  `json:"id" gorm:"column:interviewer_id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:interviewer_name;type:varchar(200);not null;uniqueIndex"`
}

// TableName задаёт имя таблицы для GORM
func (Interviewer) TableName() string {
	return "Interviewers"
}

// HiringClass представляет набор (когорту) с единой датой старта.
// Даты хранятся строками в формате YYYY-MM-DD, поэтому сравнение строк
// эквивалентно сравнению дат.
type HiringClass struct {
	ID        int64  `json:"id" gorm:"column:class_id;primaryKey;autoIncrement"`
	ClassDate string `json:"class_date" gorm:"column:class_date;type:varchar(10);not null;uniqueIndex"`

	Candidates []Candidate `json:"-" gorm:"foreignKey:ClassID"`
}

// TableName задаёт имя таблицы для GORM
func (HiringClass) TableName() string {
	return "Hiring_Classes"
}

// Candidate представляет кандидата и весь его жизненный цикл
type Candidate struct {
	ID               int64  `json:"id" gorm:"column:candidate_id;primaryKey;autoIncrement"`
	FirstName        string `json:"first_name" gorm:"column:first_name;type:varchar(200);not null"`
	LastName         string `json:"last_name" gorm:"column:last_name;type:varchar(200);not null"`
	PhoneNumber      string `json:"phone_number" gorm:"column:phone_number;type:varchar(30)"`
	COCNumber        string `json:"coc_number" gorm:"column:coc_number;type:varchar(50)"`
	InterviewDate    string `json:"interview_date" gorm:"column:interview_date;type:varchar(10)"`
	RehireDate       string `json:"rehire_date" gorm:"column:rehire_date;type:varchar(10)"`
	OriginalTermDate string `json:"original_term_date" gorm:"column:original_term_date;type:varchar(10)"`
	ReferredBy       string `json:"referred_by" gorm:"column:referred_by;type:varchar(200)"`
	Notes            string `json:"notes" gorm:"column:notes;type:varchar(1000)"`
	JobID            *int64 `json:"job_id" gorm:"column:fk_job_id;index"`
	ClassID          *int64 `json:"class_id" gorm:"column:fk_class_id;index"`
	IsSpanishOnly    bool   `json:"is_spanish_only" gorm:"column:is_spanish_only"`

	Status          CandidateStatus `json:"candidate_status" gorm:"column:candidate_status;type:varchar(20);not null"`
	ScreeningStatus ScreeningStatus `json:"screening_status" gorm:"column:screening_status;type:varchar(20)"`
	RejectionReason RejectionReason `json:"rejection_reason" gorm:"column:rejection_reason;type:varchar(20)"`

	BGDSClear             bool   `json:"bg_ds_clear" gorm:"column:bg_ds_clear"`
	PreBoardComplete      bool   `json:"pre_board_complete" gorm:"column:pre_board_complete"`
	MyInfoReady           bool   `json:"myinfo_ready" gorm:"column:myinfo_ready"`
	OrientationLetterSent bool   `json:"orientation_letter_sent" gorm:"column:orientation_letter_sent"`
	PNNumber              string `json:"pn_number" gorm:"column:pn_number;type:varchar(50)"`
	EUID                  string `json:"euid" gorm:"column:euid;type:varchar(50)"`

	Job          *Job          `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL"`
	Class        *HiringClass  `json:"-" gorm:"foreignKey:ClassID;constraint:OnDelete:SET NULL"`
	Interviewers []Interviewer `json:"interviewers,omitempty" gorm:"many2many:Candidate_Interviewers;foreignKey:ID;joinForeignKey:fk_candidate_id;References:ID;joinReferences:fk_interviewer_id"`
}

// TableName задаёт имя таблицы для GORM
func (Candidate) TableName() string {
	return "Candidates"
}

// DailyMetric представляет агрегированные показатели за один календарный день
type DailyMetric struct {
	ID                  int64  `json:"id" gorm:"column:metric_id;primaryKey;autoIncrement"`
	MetricDate          string `json:"metric_date" gorm:"column:metric_date;type:varchar(10);not null;uniqueIndex"`
	AppsReviewed        int    `json:"apps_reviewed" gorm:"column:apps_reviewed;not null"`
	InterviewsScheduled int    `json:"interviews_scheduled" gorm:"column:interviews_scheduled;not null"`
	HiresConfirmed      int    `json:"hires_confirmed" gorm:"column:hires_confirmed;not null"`

	Breakdowns []DailyBreakdown `json:"breakdowns,omitempty" gorm:"foreignKey:MetricID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (DailyMetric) TableName() string {
	return "Daily_Metrics"
}

// DailyBreakdown относит часть дневных отказов/отзывов к конкретной причине.
// Хранятся только строки с count > 0.
type DailyBreakdown struct {
	ID       int64             `json:"id" gorm:"column:breakdown_id;primaryKey;autoIncrement"`
	MetricID int64             `json:"-" gorm:"column:fk_metric_id;not null;index"`
	Category BreakdownCategory `json:"category" gorm:"column:category;type:varchar(40);not null"`
	Reason   string            `json:"reason" gorm:"column:reason;type:varchar(60);not null"`
	Count    int               `json:"count" gorm:"column:count;not null"`
}

// TableName задаёт имя таблицы для GORM
func (DailyBreakdown) TableName() string {
	return "Daily_Breakdowns"
}
