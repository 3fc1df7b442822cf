package app

import (
	"errors"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
)

// Client-facing validation messages. Several variants share one message.
const (
	MsgInvalidName          = "Json without valid name."
	MsgInvalidDate          = "Json without valid date."
	MsgInvalidCostShares    = "Json without valid cost shares."
	MsgInvalidExpenseType   = "Json without valid expense id."
	MsgInvalidDescription   = "Json without valid description."
	MsgDuplicateExpenseType = "Expense type with this name already exists."
)

// TranslateError converts an entity validation variant into a ValidationFailed
// *domain.Error with its client-facing message. Errors that are not
// validation variants are returned unchanged.
//
// The switches list every variant without a default case so the exhaustive
// linter flags a variant added without a message.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var cbErr costbearer.ValidationError
	if errors.As(err, &cbErr) {
		return translateCostBearer(cbErr)
	}
	var etErr expensetype.ValidationError
	if errors.As(err, &etErr) {
		return translateExpenseType(etErr)
	}
	var eeErr expenseentry.ValidationError
	if errors.As(err, &eeErr) {
		return translateExpenseEntry(eeErr)
	}
	return err
}

func translateCostBearer(v costbearer.ValidationError) error {
	switch v {
	case costbearer.ErrMissingName:
		return domain.ValidationFailed(MsgInvalidName)
	case costbearer.ErrInvalidDate:
		return domain.ValidationFailed(MsgInvalidDate)
	}
	return v
}

func translateExpenseType(v expensetype.ValidationError) error {
	switch v {
	case expensetype.ErrMissingName:
		return domain.ValidationFailed(MsgInvalidName)
	case expensetype.ErrMissingDescription:
		return domain.ValidationFailed(MsgInvalidDescription)
	case expensetype.ErrDuplicateName:
		return domain.ValidationFailed(MsgDuplicateExpenseType)
	}
	return v
}

func translateExpenseEntry(v expenseentry.ValidationError) error {
	switch v {
	case expenseentry.ErrMissingCostShares,
		expenseentry.ErrMalformedCostShares,
		expenseentry.ErrInvalidCostBearerID,
		expenseentry.ErrDuplicateCostBearerIDs:
		return domain.ValidationFailed(MsgInvalidCostShares)
	case expenseentry.ErrMissingExpenseType,
		expenseentry.ErrInvalidExpenseTypeID:
		return domain.ValidationFailed(MsgInvalidExpenseType)
	case expenseentry.ErrMissingDescription:
		return domain.ValidationFailed(MsgInvalidDescription)
	}
	return v
}
