//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(roomCharge, serviceCharge, discount int64) *invoice.Invoice {
	return invoice.NewInvoice(uuid.New(), uuid.New(), roomCharge, serviceCharge, discount, time.Now())
}

func TestInvoiceTotal(t *testing.T) {
	t.Run("total is charges minus discount", func(t *testing.T) {
		inv := newTestInvoice(40_000, 3_000, 2_000)
		assert.Equal(t, int64(41_000), inv.Total())
		assert.Equal(t, int64(41_000), inv.Outstanding())
	})

	t.Run("total never goes negative", func(t *testing.T) {
		inv := newTestInvoice(1_000, 0, 5_000)
		assert.Equal(t, int64(0), inv.Total())
	})

	t.Run("zero-total invoice is issued settled", func(t *testing.T) {
		inv := newTestInvoice(20_000, 0, 20_000)

		assert.Equal(t, invoice.StatusPaid, inv.Status())
		assert.Equal(t, int64(0), inv.Outstanding())

		_, err := inv.RecordPayment(1)
		assert.ErrorIs(t, err, invoice.ErrAlreadyPaid)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("partial payment leaves the invoice open", func(t *testing.T) {
		inv := newTestInvoice(40_000, 0, 0)

		settled, err := inv.RecordPayment(15_000)
		require.NoError(t, err)

		assert.False(t, settled)
		assert.Equal(t, invoice.StatusIssued, inv.Status())
		assert.Equal(t, int64(25_000), inv.Outstanding())
	})

	t.Run("payment covering the total settles the invoice", func(t *testing.T) {
		inv := newTestInvoice(40_000, 0, 0)

		_, err := inv.RecordPayment(15_000)
		require.NoError(t, err)
		settled, err := inv.RecordPayment(25_000)
		require.NoError(t, err)

		assert.True(t, settled)
		assert.Equal(t, invoice.StatusPaid, inv.Status())
		assert.Equal(t, int64(0), inv.Outstanding())
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		inv := newTestInvoice(40_000, 0, 0)

		_, err := inv.RecordPayment(40_001)
		assert.ErrorIs(t, err, invoice.ErrOverpayment)
		assert.Equal(t, int64(0), inv.PaidAmount())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv := newTestInvoice(40_000, 0, 0)

		_, err := inv.RecordPayment(0)
		assert.ErrorIs(t, err, invoice.ErrInvalidPaymentAmount)
		_, err = inv.RecordPayment(-100)
		assert.ErrorIs(t, err, invoice.ErrInvalidPaymentAmount)
	})

	t.Run("rejects payment on a paid invoice", func(t *testing.T) {
		inv := newTestInvoice(10_000, 0, 0)

		settled, err := inv.RecordPayment(10_000)
		require.NoError(t, err)
		require.True(t, settled)

		_, err = inv.RecordPayment(1)
		assert.ErrorIs(t, err, invoice.ErrAlreadyPaid)
	})

	t.Run("rejects payment on a void invoice", func(t *testing.T) {
		inv := invoice.ReconstructInvoice(
			uuid.New(), uuid.New(), uuid.New(),
			10_000, 0, 0, 0,
			invoice.StatusVoid,
			time.Now(),
		)

		_, err := inv.RecordPayment(1_000)
		assert.ErrorIs(t, err, invoice.ErrInvoiceNotPayable)
	})
}

func TestNewPaymentMethod(t *testing.T) {
	for _, valid := range []string{"cash", "card", "transfer"} {
		method, err := invoice.NewPaymentMethod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, method.String())
	}

	_, err := invoice.NewPaymentMethod("crypto")
	assert.ErrorIs(t, err, invoice.ErrInvalidPaymentMethod)
}
