package application

import (
	"fmt"
	"time"
)

// DateLayout es el formato de fecha que cruza la frontera del sistema
const DateLayout = "2006-01-02"

// ParseDate parsea una fecha de frontera. Acepta YYYY-MM-DD como
// formato principal y dd/mm/yyyy como respaldo.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("la fecha es requerida")
	}

	t, err := time.Parse(DateLayout, dateStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q, se espera %s", dateStr, DateLayout)
	}
	return t, nil
}

// FormatDate serializa una fecha al formato de frontera
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalculateAge calcula la edad en años cumplidos a la fecha dada
func CalculateAge(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}
