package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrRegistryConflict, "duplicate record")

	assert.Equal(t, "[REGISTRY_CONFLICT] duplicate record", err.Error())
	assert.Equal(t, ErrRegistryConflict, err.Code)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrMalformedRecord, "broken record %q", []string{"f", "1"})
	assert.Contains(t, err.Error(), "broken record")
	assert.Contains(t, err.Error(), "MALFORMED_RECORD")
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := Wrap(inner, ErrExternalTool, "pkgrepo list failed")

	assert.Contains(t, err.Error(), "pkgrepo list failed")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrExternalTool, "nope"))
	assert.Nil(t, Wrapf(nil, ErrExternalTool, "nope %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrParseState, "what?")

	assert.True(t, IsErrorCode(err, ErrParseState))
	assert.False(t, IsErrorCode(err, ErrEncoding))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrParseState))
	assert.False(t, IsErrorCode(nil, ErrParseState))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrFileNotFound, "missing")
	outer := fmt.Errorf("context: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrFileNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrEncoding, GetErrorCode(New(ErrEncoding, "bad bytes")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := Newf(ErrRegistryConflict, "record %s", "open(2)")
	require.True(t, errors.Is(err, New(ErrRegistryConflict, "")))
	assert.False(t, errors.Is(err, New(ErrNotFound, "")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrExternalTool, "failed").WithDetail("repo", "/repo")
	assert.Equal(t, "/repo", err.Details["repo"])
}
