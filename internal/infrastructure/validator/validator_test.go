package validator

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppValidator_ValidateEmail(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("ada@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
}

func TestAppValidator_ValidateUsername(t *testing.T) {
	v := NewValidator()
	for _, ok := range []string{"ada", "ada.lovelace", "user_01", "a-b"} {
		assert.NoError(t, v.ValidateUsername(ok), ok)
	}
	for _, bad := range []string{"", "ab", "has space", strings.Repeat("x", 33), "emoji🙂"} {
		assert.Error(t, v.ValidateUsername(bad), bad)
	}
}

func TestAppValidator_ValidatePasswordStrength(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidatePasswordStrength("correct horse"))
	assert.Error(t, v.ValidatePasswordStrength("short"))
	assert.Error(t, v.ValidatePasswordStrength("          "))
	assert.Error(t, v.ValidatePasswordStrength(strings.Repeat("p", 73)))
}

func TestRegisterCustomValidators_NotBlank(t *testing.T) {
	RegisterCustomValidators()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type body struct {
		Title string `binding:"required,notblank"`
	}
	assert.NoError(t, engine.Struct(body{Title: "hello"}))
	assert.Error(t, engine.Struct(body{Title: "   "}))
}
