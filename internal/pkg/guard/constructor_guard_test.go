package guard_test

import (
	"errors"
	"testing"

	"ordermgmt/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		require.NoError(t, g.Validate(customError))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the intended embedding pattern.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Remark struct {
		text  string
		guard guard.ConstructorGuard
	}

	var errRemarkNotConstructed = errors.New("Remark must be created via NewRemark")

	newRemark := func(text string) (Remark, error) {
		if text == "" {
			return Remark{}, errors.New("text is required")
		}
		return Remark{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	validateRemark := func(r Remark) error {
		return r.guard.Validate(errRemarkNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		remark, err := newRemark("order cancelled")

		require.NoError(t, err)
		require.NoError(t, validateRemark(remark))
		assert.Equal(t, "order cancelled", remark.text)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var remark Remark // zero value

		err := validateRemark(remark)

		require.Error(t, err)
		assert.Equal(t, errRemarkNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRemark("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "text is required")
	})
}
