package ports_test

import (
	"errors"
	"testing"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestSaveFailedError(t *testing.T) {
	t.Run("should wrap sentinel and cause", func(t *testing.T) {
		cause := errs.NewVersionIsInvalidError("version")
		err := ports.NewSaveFailedError("order-1", cause)

		assert.ErrorIs(t, err, ports.ErrSaveFailed)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		assert.Contains(t, err.Error(), "failed to save order order-1")
	})

	t.Run("should work without cause", func(t *testing.T) {
		err := ports.NewSaveFailedError("order-1", nil)

		assert.ErrorIs(t, err, ports.ErrSaveFailed)
		assert.Equal(t, "failed to save order order-1", err.Error())
	})

	t.Run("should be reachable through wrapping", func(t *testing.T) {
		err := errors.Join(errors.New("other"), ports.NewSaveFailedError("order-1", nil))

		var saveErr *ports.SaveFailedError
		assert.ErrorAs(t, err, &saveErr)
		assert.Equal(t, "order-1", saveErr.OrderID)
	})
}
