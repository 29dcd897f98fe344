package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	loginRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{4,20}$`)

	passUpperRegex   = regexp.MustCompile(`[A-Z]`)
	passLowerRegex   = regexp.MustCompile(`[a-z]`)
	passDigitRegex   = regexp.MustCompile(`[0-9]`)
	passSpecialRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// ValidatePhone valida el formato de un teléfono
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	// Limpiar espacios y separadores
	cleanPhone := strings.ReplaceAll(phone, " ", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "-", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, "(", "")
	cleanPhone = strings.ReplaceAll(cleanPhone, ")", "")

	if !phoneRegex.MatchString(cleanPhone) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", phone)
	}

	return nil
}

// ValidateLogin valida el formato de un login
func (v *Validator) ValidateLogin(login string) error {
	if login == "" {
		return fmt.Errorf("el login es requerido")
	}

	if !loginRegex.MatchString(login) {
		return fmt.Errorf("el login '%s' debe tener entre 4 y 20 caracteres alfanuméricos", login)
	}

	return nil
}

// ValidatePassword valida la política de contraseñas: entre 4 y 10
// caracteres con al menos una mayúscula, una minúscula, un dígito y un
// carácter especial
func (v *Validator) ValidatePassword(password string) error {
	if len(password) < 4 || len(password) > 10 {
		return fmt.Errorf("la contraseña debe tener entre 4 y 10 caracteres")
	}

	if !passUpperRegex.MatchString(password) ||
		!passLowerRegex.MatchString(password) ||
		!passDigitRegex.MatchString(password) ||
		!passSpecialRegex.MatchString(password) {
		return fmt.Errorf("la contraseña no cumple con los criterios")
	}

	return nil
}

// ValidateName valida un campo de nombre o apellido
func (v *Validator) ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("el campo %s es requerido", field)
	}

	return nil
}
