package expenseentry

import (
	"math"

	"github.com/google/uuid"
)

// CostShare is the portion of an entry carried by one cost bearer. The sign
// of Amount encodes direction; zero is never valid.
type CostShare struct {
	CostBearerID uuid.UUID
	Amount       float64
}

// wellFormed reports whether the share names a bearer and carries a usable amount.
func (s CostShare) wellFormed() bool {
	if s.CostBearerID == uuid.Nil {
		return false
	}
	if s.Amount == 0 || math.IsNaN(s.Amount) || math.IsInf(s.Amount, 0) {
		return false
	}
	return true
}
