package expensetype

import "github.com/jsamuelsen11/expense-ledger/internal/domain"

// NotFoundMessage is the client-facing message when an expense type id is unknown.
const NotFoundMessage = "Expense type not found."

// ValidationError enumerates the ways an expense type can be rejected.
type ValidationError int

const (
	ErrMissingName ValidationError = iota + 1
	ErrMissingDescription
	// ErrDuplicateName is raised by storage when the name is already taken.
	ErrDuplicateName
)

func (e ValidationError) Error() string {
	switch e {
	case ErrMissingName:
		return "expense type: missing name"
	case ErrMissingDescription:
		return "expense type: missing description"
	case ErrDuplicateName:
		return "expense type: duplicate name"
	default:
		return "expense type: invalid"
	}
}

// Unwrap lets errors.Is(err, domain.ErrValidation) match every variant.
func (e ValidationError) Unwrap() error {
	return domain.ErrValidation
}
