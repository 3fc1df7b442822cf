package costbearer

import "github.com/jsamuelsen11/expense-ledger/internal/domain"

// NotFoundMessage is the client-facing message when a cost bearer id is unknown.
const NotFoundMessage = "Cost Bearer not found."

// ValidationError enumerates the ways a cost bearer can be rejected.
type ValidationError int

const (
	ErrMissingName ValidationError = iota + 1
	ErrInvalidDate
)

func (e ValidationError) Error() string {
	switch e {
	case ErrMissingName:
		return "cost bearer: missing name"
	case ErrInvalidDate:
		return "cost bearer: invalid date range"
	default:
		return "cost bearer: invalid"
	}
}

// Unwrap lets errors.Is(err, domain.ErrValidation) match every variant.
func (e ValidationError) Unwrap() error {
	return domain.ErrValidation
}
