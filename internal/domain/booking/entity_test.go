//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(now time.Time) *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(now), booking.NewTieredPriceCalculator())
}

func mustPeriod(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return period
}

func TestCreateBooking(t *testing.T) {
	now := day1(7, 0)
	factory := newTestFactory(now)
	room := booking.RoomSpec{ID: uuid.New(), NightlyRate: booking.NewMoney(500_000), Available: true}
	period := mustPeriod(t, day1(8, 0), day1(10, 0))

	t.Run("prices the stay and starts pending", func(t *testing.T) {
		b, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(150_000), b.Charge().Amount())
		assert.Equal(t, b.Charge(), b.Payable())
		assert.Zero(t, b.RedeemedPoints())
	})

	t.Run("rejects unavailable room", func(t *testing.T) {
		unavailable := room
		unavailable.Available = false

		_, err := factory.CreateBooking(unavailable, uuid.New(), period, booking.RateNightly)
		assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
	})

	t.Run("rejects unvalidated rate type", func(t *testing.T) {
		_, err := factory.CreateBooking(room, uuid.New(), period, booking.RateType("weekly"))
		assert.ErrorIs(t, err, booking.ErrInvalidRateType)
	})
}

func TestBookingTransitions(t *testing.T) {
	factory := newTestFactory(day1(7, 0))
	room := booking.RoomSpec{ID: uuid.New(), NightlyRate: booking.NewMoney(500_000), Available: true}
	period := mustPeriod(t, day1(8, 0), day1(10, 0))

	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
		require.NoError(t, err)
		return b
	}

	t.Run("check-in then check-out", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.CheckIn(day1(8, 5)))
		assert.Equal(t, booking.StatusCheckedIn, b.Status())

		require.NoError(t, b.CheckOut())
		assert.Equal(t, booking.StatusCheckedOut, b.Status())
	})

	t.Run("check-in before stay starts fails", func(t *testing.T) {
		b := newBooking(t)
		assert.ErrorIs(t, b.CheckIn(day1(7, 30)), booking.ErrCheckInBeforeStayStarts)
	})

	t.Run("check-out without check-in fails", func(t *testing.T) {
		b := newBooking(t)
		assert.ErrorIs(t, b.CheckOut(), booking.ErrNotCheckedIn)
	})

	t.Run("cancel only while pending", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCanceled, b.Status())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCanceled)

		checkedIn := newBooking(t)
		require.NoError(t, checkedIn.CheckIn(day1(8, 5)))
		assert.ErrorIs(t, checkedIn.Cancel(), booking.ErrNotPending)
	})
}

func TestApplyLoyaltyDiscount(t *testing.T) {
	factory := newTestFactory(day1(7, 0))
	room := booking.RoomSpec{ID: uuid.New(), NightlyRate: booking.NewMoney(500_000), Available: true}
	period := mustPeriod(t, day1(8, 0), day1(10, 0))

	b, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
	require.NoError(t, err)

	t.Run("discount reduces payable", func(t *testing.T) {
		require.NoError(t, b.ApplyLoyaltyDiscount(100, booking.NewMoney(100_000)))
		assert.Equal(t, int64(50_000), b.Payable().Amount())
		assert.Equal(t, int64(100), b.RedeemedPoints())
	})

	t.Run("second discount is rejected", func(t *testing.T) {
		assert.ErrorIs(t, b.ApplyLoyaltyDiscount(10, booking.NewMoney(10_000)), booking.ErrDiscountAlreadyApplied)
	})

	t.Run("discount above charge is rejected", func(t *testing.T) {
		fresh, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
		require.NoError(t, err)
		assert.ErrorIs(t, fresh.ApplyLoyaltyDiscount(1000, booking.NewMoney(1_000_000)), booking.ErrDiscountExceedsCharge)
	})

	t.Run("canceled booking is rejected", func(t *testing.T) {
		canceled, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
		require.NoError(t, err)
		require.NoError(t, canceled.Cancel())

		assert.ErrorIs(t, canceled.ApplyLoyaltyDiscount(100, booking.NewMoney(100_000)), booking.ErrNotPending)
		assert.Zero(t, canceled.RedeemedPoints())
	})

	t.Run("checked-out booking is rejected", func(t *testing.T) {
		closed, err := factory.CreateBooking(room, uuid.New(), period, booking.RateHourly)
		require.NoError(t, err)
		require.NoError(t, closed.CheckIn(day1(8, 5)))
		require.NoError(t, closed.CheckOut())

		assert.ErrorIs(t, closed.ApplyLoyaltyDiscount(100, booking.NewMoney(100_000)), booking.ErrNotPending)
		assert.Equal(t, closed.Charge(), closed.Payable())
	})
}

func TestStayPeriod(t *testing.T) {
	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := booking.NewStayPeriod(day1(10, 0), day1(10, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)

		_, err = booking.NewStayPeriod(day1(10, 0), day1(8, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("duration keeps fractional hours", func(t *testing.T) {
		period := mustPeriod(t, day1(8, 0), day1(9, 30))
		assert.InDelta(t, 1.5, period.Hours(), 1e-9)
	})
}
