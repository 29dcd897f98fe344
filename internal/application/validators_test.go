package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("ana@example.com"))
	assert.NoError(t, v.ValidateEmail("ana.garcia+escuela@sub.example.mx"))

	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("sin-arroba"))
	assert.Error(t, v.ValidateEmail("ana@sindominio"))
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePhone("5551234567"))
	assert.NoError(t, v.ValidatePhone("+52 555 123 4567"))
	assert.NoError(t, v.ValidatePhone("(555) 123-4567"))

	assert.Error(t, v.ValidatePhone(""))
	assert.Error(t, v.ValidatePhone("123"))
	assert.Error(t, v.ValidatePhone("no-es-telefono"))
}

func TestValidateLogin(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateLogin("agarcia"))
	assert.NoError(t, v.ValidateLogin("ana.garcia-2"))

	assert.Error(t, v.ValidateLogin(""))
	assert.Error(t, v.ValidateLogin("ab"))
	assert.Error(t, v.ValidateLogin("un-login-demasiado-largo-para-el-campo"))
	assert.Error(t, v.ValidateLogin("con espacios"))
}

func TestValidatePassword(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePassword("Abc1!"))
	assert.NoError(t, v.ValidatePassword("Xy9$"))

	// Largo fuera de rango
	assert.Error(t, v.ValidatePassword("A1!"))
	assert.Error(t, v.ValidatePassword("Abcdef123!!"))

	// Falta alguna clase de carácter
	assert.Error(t, v.ValidatePassword("abcd1!"))
	assert.Error(t, v.ValidatePassword("ABCD1!"))
	assert.Error(t, v.ValidatePassword("Abcdef!"))
	assert.Error(t, v.ValidatePassword("Abcdef12"))
}

func TestValidateName(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateName("Nombre", "Ana"))

	assert.Error(t, v.ValidateName("Nombre", ""))
	assert.Error(t, v.ValidateName("Nombre", "   "))
}
