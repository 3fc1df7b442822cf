package expenseentry

import "github.com/jsamuelsen11/expense-ledger/internal/domain"

// NotFoundMessage is the client-facing message when an expense entry id is unknown.
const NotFoundMessage = "Expense entry not found."

// ValidationError enumerates the ways an expense entry can be rejected.
type ValidationError int

const (
	ErrMissingCostShares ValidationError = iota + 1
	ErrMalformedCostShares
	// ErrInvalidCostBearerID is reserved for checking shares against known cost bearers.
	ErrInvalidCostBearerID
	ErrDuplicateCostBearerIDs
	ErrMissingExpenseType
	// ErrInvalidExpenseTypeID is reserved for checking the expense type exists.
	ErrInvalidExpenseTypeID
	ErrMissingDescription
)

func (e ValidationError) Error() string {
	switch e {
	case ErrMissingCostShares:
		return "expense entry: missing cost shares"
	case ErrMalformedCostShares:
		return "expense entry: malformed cost share"
	case ErrInvalidCostBearerID:
		return "expense entry: unknown cost bearer"
	case ErrDuplicateCostBearerIDs:
		return "expense entry: duplicate cost bearer"
	case ErrMissingExpenseType:
		return "expense entry: missing expense type"
	case ErrInvalidExpenseTypeID:
		return "expense entry: unknown expense type"
	case ErrMissingDescription:
		return "expense entry: missing description"
	default:
		return "expense entry: invalid"
	}
}

// Unwrap lets errors.Is(err, domain.ErrValidation) match every variant.
func (e ValidationError) Unwrap() error {
	return domain.ErrValidation
}
