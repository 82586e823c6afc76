package metrics

import "errors"

var (
	// ErrUnknownSeverity is returned when a vulnerability carries a severity outside Critical/High/Medium/Low.
	ErrUnknownSeverity = errors.New("unknown vulnerability severity")
	// ErrUnknownHealth is returned when an endpoint carries a health state outside Healthy/Warning/Offline.
	ErrUnknownHealth = errors.New("unknown endpoint health state")
	// ErrInvalidSelector is returned when a tier, status, severity or health selector cannot be parsed.
	ErrInvalidSelector = errors.New("invalid selector")
)
