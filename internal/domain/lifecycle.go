package domain

// CandidateStatus - статус кандидата в воронке найма
type CandidateStatus string

const (
	StatusPending  CandidateStatus = "Pending"
	StatusHired    CandidateStatus = "Hired"
	StatusRejected CandidateStatus = "Rejected"
	StatusOnHold   CandidateStatus = "On Hold"
)

// ScreeningStatus - статус скрининга (пустое значение допустимо)
type ScreeningStatus string

const (
	ScreeningNone ScreeningStatus = ""
	ScreeningBG   ScreeningStatus = "BG"
	ScreeningDS   ScreeningStatus = "DS"
	ScreeningEL   ScreeningStatus = "elink"
	ScreeningDSBG ScreeningStatus = "DS/BG"
)

// RejectionReason - причина отказа кандидату (пустое значение допустимо)
type RejectionReason string

const (
	RejectionNone  RejectionReason = ""
	RejectionDS    RejectionReason = "DS"
	RejectionBG    RejectionReason = "BG"
	RejectionNCNS  RejectionReason = "NCNS"
	RejectionEL    RejectionReason = "elink"
	RejectionOther RejectionReason = "Other"
)

// Отображаемые названия недостающих пунктов допуска.
// PN и EUID намеренно объединены в одну метку, как в исходных формах.
const (
	MissingBGDS     = "BG/DS Clear"
	MissingPreBoard = "Pre-Board"
	MissingMyInfo   = "MyInfo Ready"
	MissingPNEUID   = "PN/EUID"
)

// Cleared сообщает, допущен ли кандидат к старту: все три флага выставлены
// и заполнены оба идентификатора (PN и EUID)
func (c *Candidate) Cleared() bool {
	return c.BGDSClear && c.PreBoardComplete && c.MyInfoReady &&
		c.PNNumber != "" && c.EUID != ""
}

// MissingItems возвращает упорядоченный список недостающих пунктов допуска.
// Для допущенного кандидата список пуст.
func (c *Candidate) MissingItems() []string {
	var missing []string
	if !c.BGDSClear {
		missing = append(missing, MissingBGDS)
	}
	if !c.PreBoardComplete {
		missing = append(missing, MissingPreBoard)
	}
	if !c.MyInfoReady {
		missing = append(missing, MissingMyInfo)
	}
	if c.PNNumber == "" || c.EUID == "" {
		missing = append(missing, MissingPNEUID)
	}
	return missing
}

// Started сообщает, вышел ли кандидат на работу (для прошедших классов)
func (c *Candidate) Started() bool {
	return c.Status == StatusHired
}

// FinalStatus возвращает отображаемую причину для не вышедших кандидатов:
// причину отказа, если она указана, иначе статус как есть
func (c *Candidate) FinalStatus() string {
	if c.RejectionReason != RejectionNone {
		return string(c.RejectionReason)
	}
	return string(c.Status)
}

// IsFutureClass сообщает, считается ли класс будущим. Класс с датой,
// равной сегодняшней, считается будущим. Даты фиксированного формата
// YYYY-MM-DD, сравнение строк корректно.
func IsFutureClass(classDate, today string) bool {
	return classDate >= today
}

// ValidStatus проверяет принадлежность значения к допустимым статусам
func ValidStatus(s CandidateStatus) bool {
	switch s {
	case StatusPending, StatusHired, StatusRejected, StatusOnHold:
		return true
	}
	return false
}

// ValidScreeningStatus проверяет принадлежность значения к допустимым статусам скрининга
func ValidScreeningStatus(s ScreeningStatus) bool {
	switch s {
	case ScreeningNone, ScreeningBG, ScreeningDS, ScreeningEL, ScreeningDSBG:
		return true
	}
	return false
}

// ValidRejectionReason проверяет принадлежность значения к допустимым причинам отказа
func ValidRejectionReason(r RejectionReason) bool {
	switch r {
	case RejectionNone, RejectionDS, RejectionBG, RejectionNCNS, RejectionEL, RejectionOther:
		return true
	}
	return false
}
