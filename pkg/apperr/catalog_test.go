package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap_KeepsCauseAndCode(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(OpenFailed, cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, OpenFailed, CodeOf(err))
	require.Equal(t, "OPEN_FAILED: boom", err.Error())

	// An outer wrap keeps the inner code.
	outer := fmt.Errorf("load: %w", err)
	require.Equal(t, OpenFailed, CodeOf(Wrap(ReadFailed, outer)))
}

func TestWrap_Nil(t *testing.T) {
	require.NoError(t, Wrap(Validation, nil))
	require.Equal(t, Code(""), CodeOf(nil))
	require.Equal(t, "", Message(nil))
}

func TestMessage_AppendsNextSteps(t *testing.T) {
	msg := Message(Wrapf(InvalidSheet, "sheet %q not found", "Vendas"))
	require.Contains(t, msg, `INVALID_SHEET: sheet "Vendas" not found`)
	require.Contains(t, msg, "nextSteps: Rename the data sheet to Sheet1")
}

func TestMessage_UncodedIsInternal(t *testing.T) {
	err := errors.New("surprise")
	require.Equal(t, Internal, CodeOf(err))
	require.Equal(t, "INTERNAL: surprise", Message(err))
}

func TestEmptyMessageUsesCatalogDefault(t *testing.T) {
	err := &Error{Code: NotFound}
	require.Equal(t, "NOT_FOUND: workbook not found", err.Error())
	e, ok := Lookup(NotFound)
	require.True(t, ok)
	require.NotEmpty(t, e.NextSteps)
}

func TestIsInvalidSheet(t *testing.T) {
	require.True(t, IsInvalidSheet(errors.New("sheet Foo does not exist")))
	require.False(t, IsInvalidSheet(errors.New("permission denied")))
	require.False(t, IsInvalidSheet(nil))
}
