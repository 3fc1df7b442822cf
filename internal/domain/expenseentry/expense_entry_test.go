package expenseentry

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
)

func share(id uuid.UUID, amount float64) CostShare {
	return CostShare{CostBearerID: id, Amount: amount}
}

func TestNew(t *testing.T) {
	t.Parallel()

	bearerA := uuid.New()
	bearerB := uuid.New()
	expenseType := uuid.New()

	tests := []struct {
		name        string
		shares      []CostShare
		expenseType uuid.UUID
		description string
		wantErr     error
	}{
		{
			name:        "single share",
			shares:      []CostShare{share(bearerA, 12.5)},
			expenseType: expenseType,
			description: "Some Description",
		},
		{
			name:        "negative amount is a valid direction",
			shares:      []CostShare{share(bearerA, 12.5), share(bearerB, -12.5)},
			expenseType: expenseType,
			description: "Refund",
		},
		{
			name:        "nil shares",
			shares:      nil,
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMissingCostShares,
		},
		{
			name:        "empty shares",
			shares:      []CostShare{},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMissingCostShares,
		},
		{
			name:        "zero amount",
			shares:      []CostShare{share(bearerA, 0)},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "nil cost bearer id",
			shares:      []CostShare{share(uuid.Nil, 4)},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "NaN amount",
			shares:      []CostShare{share(bearerA, math.NaN())},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "infinite amount",
			shares:      []CostShare{share(bearerA, math.Inf(1))},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "duplicate cost bearer",
			shares:      []CostShare{share(bearerA, 1), share(bearerA, 2)},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrDuplicateCostBearerIDs,
		},
		{
			name:        "duplicate reported before a later malformed share",
			shares:      []CostShare{share(bearerA, 1), share(bearerA, 0)},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrDuplicateCostBearerIDs,
		},
		{
			name:        "malformed share reported before a later duplicate",
			shares:      []CostShare{share(bearerA, 0), share(bearerA, 1)},
			expenseType: expenseType,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "missing expense type",
			shares:      []CostShare{share(bearerA, 1)},
			expenseType: uuid.Nil,
			description: "Some Description",
			wantErr:     ErrMissingExpenseType,
		},
		{
			name:        "shares checked before expense type",
			shares:      []CostShare{share(bearerA, 0)},
			expenseType: uuid.Nil,
			description: "Some Description",
			wantErr:     ErrMalformedCostShares,
		},
		{
			name:        "blank description",
			shares:      []CostShare{share(bearerA, 1)},
			expenseType: expenseType,
			description: "  ",
			wantErr:     ErrMissingDescription,
		},
		{
			name:        "expense type checked before description",
			shares:      []CostShare{share(bearerA, 1)},
			expenseType: uuid.Nil,
			description: "",
			wantErr:     ErrMissingExpenseType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.shares, tt.expenseType, tt.description, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if got.ID() == uuid.Nil {
				t.Error("ID() = uuid.Nil, want generated id")
			}
			if got.ExpenseType() != tt.expenseType {
				t.Errorf("ExpenseType() = %s, want %s", got.ExpenseType(), tt.expenseType)
			}
			if got.Description() != tt.description {
				t.Errorf("Description() = %q, want %q", got.Description(), tt.description)
			}
			shares := got.CostShares()
			if len(shares) != len(tt.shares) {
				t.Fatalf("len(CostShares()) = %d, want %d", len(shares), len(tt.shares))
			}
			for i := range shares {
				if shares[i] != tt.shares[i] {
					t.Errorf("CostShares()[%d] = %+v, want %+v", i, shares[i], tt.shares[i])
				}
			}
		})
	}
}

func TestNew_ExpenseDate(t *testing.T) {
	t.Parallel()

	shares := []CostShare{share(uuid.New(), 12.5)}

	t.Run("explicit date is kept", func(t *testing.T) {
		t.Parallel()

		date := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		got, err := New(shares, uuid.New(), "Some Description", &date)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}
		if !got.ExpenseDate().Equal(date) {
			t.Errorf("ExpenseDate() = %v, want %v", got.ExpenseDate(), date)
		}
	})

	t.Run("absent date defaults to now", func(t *testing.T) {
		t.Parallel()

		before := time.Now()
		got, err := New(shares, uuid.New(), "Some Description", nil)
		after := time.Now()
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}
		if got.ExpenseDate().Before(before) || got.ExpenseDate().After(after) {
			t.Errorf("ExpenseDate() = %v, want between %v and %v", got.ExpenseDate(), before, after)
		}
		if loc := got.ExpenseDate().Location(); loc != time.UTC {
			t.Errorf("ExpenseDate() location = %v, want UTC", loc)
		}
	})

	t.Run("offset date is stored in UTC", func(t *testing.T) {
		t.Parallel()

		date := time.Date(2025, 3, 14, 14, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
		got, err := New(shares, uuid.New(), "Some Description", &date)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		if !got.ExpenseDate().Equal(want) || got.ExpenseDate().Location() != time.UTC {
			t.Errorf("ExpenseDate() = %v, want %v", got.ExpenseDate(), want)
		}
	})
}

func TestNew_CopiesShares(t *testing.T) {
	t.Parallel()

	bearer := uuid.New()
	shares := []CostShare{share(bearer, 12.5)}

	got, err := New(shares, uuid.New(), "Some Description", nil)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	shares[0].Amount = 99
	if got.CostShares()[0].Amount != 12.5 {
		t.Errorf("CostShares()[0].Amount = %v after caller mutation, want 12.5", got.CostShares()[0].Amount)
	}

	out := got.CostShares()
	out[0].Amount = 77
	if got.CostShares()[0].Amount != 12.5 {
		t.Errorf("CostShares()[0].Amount = %v after result mutation, want 12.5", got.CostShares()[0].Amount)
	}
}

func TestRestoreAndWithID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expenseType := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	shares := []CostShare{share(uuid.New(), 3), share(uuid.New(), -3)}

	got := Restore(id, date, shares, expenseType, "Lunch")
	if got.ID() != id {
		t.Errorf("ID() = %s, want %s", got.ID(), id)
	}
	if !got.ExpenseDate().Equal(date) {
		t.Errorf("ExpenseDate() = %v, want %v", got.ExpenseDate(), date)
	}

	newID := uuid.New()
	moved := got.WithID(newID)
	if moved.ID() != newID {
		t.Errorf("WithID().ID() = %s, want %s", moved.ID(), newID)
	}
	if got.ID() != id {
		t.Error("WithID() mutated the receiver")
	}
	if len(moved.CostShares()) != 2 {
		t.Errorf("len(WithID().CostShares()) = %d, want 2", len(moved.CostShares()))
	}
}
