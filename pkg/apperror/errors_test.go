package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundError(t *testing.T) {
	err := apperror.NewNotFoundError("Product")

	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "Product not found", err.Message)
	assert.Equal(t, "Product not found", err.Error())
}

func TestNewConflictError(t *testing.T) {
	err := apperror.NewConflictError("Register already has an open session")

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, "Register already has an open session", err.Message)
}

func TestGetAppError_PassesThrough(t *testing.T) {
	original := apperror.NewBadRequestError("Insufficient stock")

	got := apperror.GetAppError(original)

	assert.Same(t, original, got)
}

func TestGetAppError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("recording sale: %w", apperror.ErrConflict)

	got := apperror.GetAppError(wrapped)

	assert.Equal(t, http.StatusConflict, got.Code)
}

func TestGetAppError_UnknownBecomesInternal(t *testing.T) {
	got := apperror.GetAppError(errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.Equal(t, "connection refused", got.Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, apperror.IsAppError(apperror.ErrNotFound))
	assert.True(t, apperror.IsAppError(fmt.Errorf("wrap: %w", apperror.ErrBadRequest)))
	assert.False(t, apperror.IsAppError(errors.New("plain")))
}

func TestNewValidationError(t *testing.T) {
	err := apperror.NewValidationError([]apperror.FieldError{
		{Field: "quantity", Message: "must be at least 1"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Len(t, err.Errors, 1)
	assert.Equal(t, "quantity", err.Errors[0].Field)
}
