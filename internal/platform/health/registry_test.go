package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/expense-ledger/internal/platform/health"
	"github.com/jsamuelsen11/expense-ledger/mocks"
)

// checker returns a mock named name whose check reports err.
func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	breakerOpen := errors.New("database: failing (circuit breaker open)")
	replicaDown := errors.New("replica: connection refused")

	type check struct {
		name string
		err  error
	}

	tests := []struct {
		name   string
		checks []check
		want   map[string]error
	}{
		{
			name: "nothing registered",
			want: map[string]error{},
		},
		{
			name:   "all healthy",
			checks: []check{{"database", nil}, {"migrations", nil}},
			want:   map[string]error{"database": nil, "migrations": nil},
		},
		{
			name:   "one failing",
			checks: []check{{"migrations", nil}, {"database", breakerOpen}},
			want:   map[string]error{"migrations": nil, "database": breakerOpen},
		},
		{
			name:   "duplicate name keeps the last registered",
			checks: []check{{"database", nil}, {"database", replicaDown}},
			want:   map[string]error{"database": replicaDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checks {
				r.Register(checker(t, c.name, c.err))
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want a map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() has %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for name, wantErr := range tt.want {
				gotErr, ok := got[name]
				if !ok {
					t.Errorf("missing result for %q", name)
					continue
				}
				if !errors.Is(gotErr, wantErr) || (wantErr == nil) != (gotErr == nil) {
					t.Errorf("%s = %v, want %v", name, gotErr, wantErr)
				}
			}
		})
	}
}

func TestCheckAll_CanceledProbe(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("database")
	// The probe may be skipped before the checker runs.
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	}).Maybe()

	r := health.New()
	r.Register(c)

	if err := r.CheckAll(ctx)["database"]; !errors.Is(err, context.Canceled) {
		t.Errorf("database = %v, want context.Canceled", err)
	}
}

func TestCheckAll_Timeouts(t *testing.T) {
	t.Parallel()

	t.Run("hung check is cut off", func(t *testing.T) {
		t.Parallel()

		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return("database")
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
		r.Register(c)

		start := time.Now()
		err := r.CheckAll(context.Background())["database"]
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("database = %v, want context.DeadlineExceeded", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
		}
	})

	t.Run("zero keeps the default deadline", func(t *testing.T) {
		t.Parallel()

		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return("database")
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			dl, ok := ctx.Deadline()
			if !ok || time.Until(dl) > health.DefaultCheckTimeout {
				return errors.New("missing default deadline")
			}
			return nil
		})

		r := health.New(health.WithCheckTimeout(0))
		r.Register(c)

		if err := r.CheckAll(context.Background())["database"]; err != nil {
			t.Errorf("database = %v, want nil", err)
		}
	})
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	const delay = 100 * time.Millisecond
	slow := func(name string) *mocks.MockHealthChecker {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
			time.Sleep(delay)
			return nil
		})
		return c
	}

	r := health.New(health.WithMaxConcurrent(2))
	r.Register(slow("database"))
	r.Register(slow("replica"))

	start := time.Now()
	results := r.CheckAll(context.Background())
	elapsed := time.Since(start)

	if len(results) != 2 {
		t.Fatalf("CheckAll() has %d entries, want 2", len(results))
	}
	if elapsed >= 2*delay {
		t.Errorf("CheckAll took %v, want under %v with two workers", elapsed, 2*delay)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Go(func() {
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("database").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		})
	}
	wg.Wait()
}
