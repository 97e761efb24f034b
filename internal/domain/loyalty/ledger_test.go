//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testProgram(accrualRate float64, minPoints int64) loyalty.Program {
	return loyalty.NewProgram(uuid.New(), "standard", minPoints, 1_000, accrualRate)
}

func TestProgramEarnedPoints(t *testing.T) {
	t.Run("floors fractional points", func(t *testing.T) {
		cases := []struct {
			name       string
			rate       float64
			paidAmount int64
			expected   int64
		}{
			{"exact conversion", 0.01, 250_000, 2_500},
			{"fraction truncated", 0.01, 199, 1},
			{"large payment", 0.01, 12_345_678, 123_456},
			{"higher rate", 0.02, 1_000, 20},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				points, err := testProgram(tc.rate, 0).EarnedPoints(tc.paidAmount)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, points)
			})
		}
	})

	t.Run("tiny payment earns nothing, reported as no-op", func(t *testing.T) {
		_, err := testProgram(0.01, 0).EarnedPoints(99)
		assert.ErrorIs(t, err, loyalty.ErrNoPointsEarned)
	})

	t.Run("non-positive accrual rate is a configuration error", func(t *testing.T) {
		_, err := testProgram(0, 0).EarnedPoints(250_000)
		assert.ErrorIs(t, err, loyalty.ErrInvalidAccrualRate)

		_, err = testProgram(-0.01, 0).EarnedPoints(250_000)
		assert.ErrorIs(t, err, loyalty.ErrInvalidAccrualRate)
	})
}

func TestProgramDiscountFor(t *testing.T) {
	t.Run("converts points at the configured rate", func(t *testing.T) {
		discount, err := testProgram(0.01, 0).DiscountFor(150)
		require.NoError(t, err)
		assert.Equal(t, int64(150_000), discount)
	})

	t.Run("non-positive discount rate is a configuration error", func(t *testing.T) {
		bad := loyalty.NewProgram(uuid.New(), "broken", 0, 0, 0.01)
		_, err := bad.DiscountFor(150)
		assert.ErrorIs(t, err, loyalty.ErrInvalidDiscountRate)
	})
}

func TestAccountEarn(t *testing.T) {
	customerID := uuid.New()
	account := loyalty.ReconstructAccount(customerID, uuid.New(), 100)

	t.Run("adds to balance and emits an earn entry", func(t *testing.T) {
		entry, err := account.Earn(2_500, testNow)
		require.NoError(t, err)

		assert.Equal(t, int64(2_600), account.Balance())
		assert.Equal(t, customerID, entry.CustomerID())
		assert.Equal(t, int64(2_500), entry.Points())
		assert.Equal(t, loyalty.KindEarn, entry.Kind())
		assert.Equal(t, testNow, entry.CreatedAt())
	})

	t.Run("rejects non-positive points", func(t *testing.T) {
		before := account.Balance()
		_, err := account.Earn(0, testNow)
		assert.ErrorIs(t, err, loyalty.ErrInvalidPointsAmount)
		assert.Equal(t, before, account.Balance())
	})
}

func TestAccountRedeem(t *testing.T) {
	program := testProgram(0.01, 0)

	t.Run("subtracts balance and emits a negative use entry", func(t *testing.T) {
		account := loyalty.ReconstructAccount(uuid.New(), program.ID(), 500)

		entry, err := account.Redeem(150, program, testNow)
		require.NoError(t, err)

		assert.Equal(t, int64(350), account.Balance())
		assert.Equal(t, int64(-150), entry.Points())
		assert.Equal(t, loyalty.KindUse, entry.Kind())
	})

	t.Run("insufficient balance never partially succeeds", func(t *testing.T) {
		account := loyalty.ReconstructAccount(uuid.New(), program.ID(), 100)

		_, err := account.Redeem(150, program, testNow)
		assert.ErrorIs(t, err, loyalty.ErrInsufficientBalance)
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("balance below program minimum cannot redeem", func(t *testing.T) {
		gated := testProgram(0.01, 200)
		account := loyalty.ReconstructAccount(uuid.New(), gated.ID(), 150)

		_, err := account.Redeem(100, gated, testNow)
		assert.ErrorIs(t, err, loyalty.ErrBelowMinimumPoints)
		assert.Equal(t, int64(150), account.Balance())
	})

	t.Run("rejects non-positive points", func(t *testing.T) {
		account := loyalty.ReconstructAccount(uuid.New(), program.ID(), 500)
		_, err := account.Redeem(-10, program, testNow)
		assert.ErrorIs(t, err, loyalty.ErrInvalidPointsAmount)
	})
}

func TestCheckConsistency(t *testing.T) {
	assert.NoError(t, loyalty.CheckConsistency(350, 350))
	assert.ErrorIs(t, loyalty.CheckConsistency(350, 300), loyalty.ErrBalanceMismatch)
}
