package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtcontrib/mediastore/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "cannot read directory")
	assert.Equal(t, "[FILE_ACCESS] cannot read directory", err.Error())
	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(err))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrFileAccess, "cannot open media file")

	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "ignored %d", 1))
}

func TestIsErrorCode_ThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrPlaceUnsupported, "no symlinks here")
	outer := fmt.Errorf("while configuring placement: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrPlaceUnsupported))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrPlaceFailed))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrConfigParse, "bad world.mt")
	b := errors.New(errors.ErrConfigParse, "different message")
	require.True(t, stderrors.Is(a, b))

	c := errors.New(errors.ErrConfigLoad, "missing world.mt")
	assert.False(t, stderrors.Is(a, c))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "mod missing").
		WithDetail("mod", "mesecons").
		WithDetail("root", "/worlds/foo/worldmods")

	assert.Equal(t, "mesecons", err.Details["mod"])
	assert.Equal(t, "/worlds/foo/worldmods", err.Details["root"])
}

func TestGetErrorCode_Unknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
