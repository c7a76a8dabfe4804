package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeEmptyColumn,
				Message: `column "salary" has no present values`,
				Cause:   nil,
			},
			wantMessage: `[EMPTY_COLUMN] column "salary" has no present values`,
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeConfig,
				Message: "failed to load config",
				Cause:   fmt.Errorf("bad yaml"),
			},
			wantMessage: "[CONFIG] failed to load config: bad yaml",
		},
		{
			name: "error with wrapped cause",
			appError: &AppError{
				Type:    ErrTypeSchema,
				Message: "row rejected",
				Cause:   errors.New("wrong cell count"),
			},
			wantMessage: "[SCHEMA] row rejected: wrong cell count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := NewAppError(ErrTypeConfig, "load failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))

	noCause := NewAppError(ErrTypeValidation, "bad input", nil)
	assert.Nil(t, noCause.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewAppError(ErrTypeValidation, "bad bin spec", nil).
		WithContext("edges", 3).
		WithContext("labels", 4)

	assert.Equal(t, 3, err.Context["edges"])
	assert.Equal(t, 4, err.Context["labels"])

	// WithContext on a zero-value error allocates the map
	bare := &AppError{Type: ErrTypeValidation, Message: "bare"}
	bare.WithContext("key", "value")
	assert.Equal(t, "value", bare.Context["key"])
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{
			name:    "matching type",
			err:     NewEmptyColumnError("salary"),
			errType: ErrTypeEmptyColumn,
			want:    true,
		},
		{
			name:    "non-matching type",
			err:     NewEmptyColumnError("salary"),
			errType: ErrTypeUnknownColumn,
			want:    false,
		},
		{
			name:    "wrapped AppError",
			err:     fmt.Errorf("cleaning stage: %w", NewUnknownColumnError("bonus")),
			errType: ErrTypeUnknownColumn,
			want:    true,
		},
		{
			name:    "plain error",
			err:     errors.New("plain"),
			errType: ErrTypeEmptyColumn,
			want:    false,
		},
		{
			name:    "nil error",
			err:     nil,
			errType: ErrTypeEmptyColumn,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsType(tt.err, tt.errType))
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("empty column", func(t *testing.T) {
		err := NewEmptyColumnError("age")
		require.NotNil(t, err)
		assert.Equal(t, ErrTypeEmptyColumn, err.Type)
		assert.Contains(t, err.Error(), `column "age" has no present values`)
		assert.Equal(t, "age", err.Context["column"])
	})

	t.Run("unknown column", func(t *testing.T) {
		err := NewUnknownColumnError("bonus")
		require.NotNil(t, err)
		assert.Equal(t, ErrTypeUnknownColumn, err.Type)
		assert.Contains(t, err.Error(), `unknown column "bonus"`)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		err := NewKindMismatchError("age", "int", "float")
		require.NotNil(t, err)
		assert.Equal(t, ErrTypeKindMismatch, err.Type)
		assert.Contains(t, err.Error(), `column "age" is int, not float`)
		assert.Equal(t, "int", err.Context["declared"])
		assert.Equal(t, "float", err.Context["used"])
	})

	t.Run("config with cause", func(t *testing.T) {
		cause := errors.New("no such file")
		err := NewConfigError("cannot read config file", cause)
		require.NotNil(t, err)
		assert.Equal(t, ErrTypeConfig, err.Type)
		assert.True(t, errors.Is(err, cause))
	})
}
