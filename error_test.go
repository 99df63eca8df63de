package hellodict_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/hellodict"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := hellodict.Errorf(hellodict.ENOTFOUND, "word %q not found", "test")

	assert.Equal(t, hellodict.ENOTFOUND, hellodict.ErrorCode(err))
	assert.Equal(t, "word \"test\" not found", hellodict.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hellodict.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hellodict.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading corpus: %w", hellodict.ErrUnavailable)

	assert.Equal(t, hellodict.EUNAVAILABLE, hellodict.ErrorCode(err))
	assert.Equal(t, "dictionary unavailable", hellodict.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, hellodict.EINTERNAL, hellodict.ErrorCode(err))
	assert.Equal(t, "Internal error.", hellodict.ErrorMessage(err))
}
