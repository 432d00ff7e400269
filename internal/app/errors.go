package app

import "fmt"

type AssessErrorCode string

const (
	ErrUnknownEmotion      AssessErrorCode = "UNKNOWN_EMOTION"
	ErrUnknownIntervention AssessErrorCode = "UNKNOWN_INTERVENTION"
	ErrUnknownRating       AssessErrorCode = "UNKNOWN_RATING"
	ErrTurnNotFound        AssessErrorCode = "TURN_NOT_FOUND"
	ErrCatalogInvalid      AssessErrorCode = "CATALOG_INVALID"
)

// AssessError is a typed use-case error with a stable code for callers.
// Engine decisions never produce these: classification and safety
// determination are total. They surface only at the input boundary
// (unparseable enum strings) or at startup (catalog validation).
type AssessError struct {
	Code    AssessErrorCode
	Message string
}

func (e *AssessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
