package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrInterviewerNotFound = errors.New("interviewer not found")
	ErrClassNotFound       = errors.New("hiring class not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrMetricNotFound      = errors.New("no metrics recorded for this date")

	ErrDuplicateInterviewerName = errors.New("interviewer with this name already exists")
	ErrDuplicateClassDate       = errors.New("hiring class with this date already exists")

	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus    = errors.New("unknown candidate status value")
	ErrNegativeCount    = errors.New("counts must be non-negative integers")
	ErrUnknownBreakdown = errors.New("unknown breakdown category/reason pair")
)
