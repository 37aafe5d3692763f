package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := NotRecognized("could not understand %q", "banana")
	assert.Equal(t, `[NOT_RECOGNIZED] could not understand "banana"`, err.Error())

	cause := pkgerrors.New("disk full")
	err = Storage(cause, "failed to save reminders")
	assert.Equal(t, "[STORAGE] failed to save reminders: disk full", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode_Wrapped(t *testing.T) {
	base := DuplicateKey("2026-06-02 15:30")
	wrapped := pkgerrors.Wrap(base, "add reminder")

	assert.True(t, IsCode(wrapped, ErrCodeDuplicateKey))
	assert.False(t, IsCode(wrapped, ErrCodeStorage))
	assert.False(t, IsCode(pkgerrors.New("plain"), ErrCodeDuplicateKey))
	assert.False(t, IsCode(nil, ErrCodeDuplicateKey))
}

func TestGetCodeFromError(t *testing.T) {
	assert.Equal(t, ErrCodePastInstant, GetCodeFromError(PastInstant("2020-01-01 00:00"), ErrCodeStorage))
	assert.Equal(t, ErrCodeStorage, GetCodeFromError(pkgerrors.New("plain"), ErrCodeStorage))
}

func TestWithContext(t *testing.T) {
	err := Invalid("no such date").WithContext("day", 30).WithContext("month", "February")
	assert.Equal(t, 30, err.Context["day"])
	assert.Equal(t, "February", err.Context["month"])
}
