package domain

// BreakdownCategory - категория детализации дневных показателей
type BreakdownCategory string

const (
	PreInterviewRejection   BreakdownCategory = "pre_interview_rejection"
	PostInterviewRejection  BreakdownCategory = "post_interview_rejection"
	PreInterviewWithdrawal  BreakdownCategory = "pre_interview_withdrawal"
	PostInterviewWithdrawal BreakdownCategory = "post_interview_withdrawal"
)

// BreakdownKey - пара (категория, причина), идентифицирующая строку детализации
type BreakdownKey struct {
	Category BreakdownCategory
	Reason   string
}

// Причины отказов и отзаявок, допустимые в детализации
const (
	ReasonNotEligible = "Not eligible for Rehire"
	ReasonBackground  = "Background"
	ReasonNotGoodFit  = "Not a good Fit"
	ReasonNCNS        = "NCNS"
	ReasonSchedule    = "Schedule"
	ReasonOtherOffer  = "Other Job Offer"
	ReasonPay         = "Pay"
	ReasonOther       = "Other"
)

// fixedBreakdowns - полный фиксированный набор допустимых пар.
// Порядок соответствует порядку колонок импорта и строк отчётов.
var fixedBreakdowns = []BreakdownKey{
	{PreInterviewRejection, ReasonNotEligible},
	{PreInterviewRejection, ReasonBackground},
	{PreInterviewRejection, ReasonNotGoodFit},
	{PostInterviewRejection, ReasonNotEligible},
	{PostInterviewRejection, ReasonBackground},
	{PostInterviewRejection, ReasonNotGoodFit},
	{PostInterviewRejection, ReasonNCNS},
	{PreInterviewWithdrawal, ReasonSchedule},
	{PreInterviewWithdrawal, ReasonOtherOffer},
	{PreInterviewWithdrawal, ReasonPay},
	{PreInterviewWithdrawal, ReasonOther},
	{PostInterviewWithdrawal, ReasonSchedule},
	{PostInterviewWithdrawal, ReasonOtherOffer},
	{PostInterviewWithdrawal, ReasonPay},
	{PostInterviewWithdrawal, ReasonOther},
}

// FixedBreakdowns возвращает копию полного набора допустимых пар
func FixedBreakdowns() []BreakdownKey {
	out := make([]BreakdownKey, len(fixedBreakdowns))
	copy(out, fixedBreakdowns)
	return out
}

// ValidBreakdown проверяет, входит ли пара в фиксированный набор
func ValidBreakdown(category BreakdownCategory, reason string) bool {
	for _, k := range fixedBreakdowns {
		if k.Category == category && k.Reason == reason {
			return true
		}
	}
	return false
}

// IsWithdrawal сообщает, относится ли категория к отзаявкам
func (c BreakdownCategory) IsWithdrawal() bool {
	return c == PreInterviewWithdrawal || c == PostInterviewWithdrawal
}

// Названия сводных строк недельного отчёта
const (
	RollupWithdrew = "Withdrew"
	RollupDecline  = "Decline"
	RollupNCNS     = "NCNS"
)

// Rollup относит пару детализации к сводной строке недельного отчёта:
// отзаявки к Withdrew, отказы NCNS к NCNS, остальные отказы к Decline
func (k BreakdownKey) Rollup() string {
	if k.Category.IsWithdrawal() {
		return RollupWithdrew
	}
	if k.Reason == ReasonNCNS {
		return RollupNCNS
	}
	return RollupDecline
}
