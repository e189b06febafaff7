package assembler

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Nasm))
	assert.NoError(t, Validate("NASM"))
	assert.NoError(t, Validate(Yasm))
	assert.ErrorContains(t, Validate("ca65"), "unsupported assembler 'ca65'")
}
