package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSomething = errors.New("something")

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "font %s not found", "x")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "font x not found", UserMessage(err))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestKindError(t *testing.T) {
	err := KindError(ConfigurationError, errSomething, EINVALID, "bad %d", 7)
	assert.True(t, errors.Is(err, ConfigurationError))
	assert.True(t, errors.Is(err, errSomething))
	assert.False(t, errors.Is(err, ExternalDecodeError))
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "bad 7", UserMessage(err))
	//
	err = KindError(MisalignedBitLength, nil, EALIGN, "odd")
	assert.True(t, errors.Is(err, MisalignedBitLength))
	assert.Equal(t, EALIGN, Code(err))
}

func TestErrorWithCodeWrapsNil(t *testing.T) {
	err := ErrorWithCode(nil, EDECODE)
	assert.Equal(t, EDECODE, Code(err))
	assert.Equal(t, "decode-error", UserMessage(err))
}
