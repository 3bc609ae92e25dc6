package getnovel_test

import (
	"errors"
	"testing"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := getnovel.Errorf(getnovel.ENOTFOUND, "novel %q not found", "test")

	assert.Equal(t, getnovel.ENOTFOUND, getnovel.ErrorCode(err))
	assert.Equal(t, "novel \"test\" not found", getnovel.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, getnovel.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, getnovel.EINTERNAL, getnovel.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, getnovel.ErrorMessage(nil))
}
