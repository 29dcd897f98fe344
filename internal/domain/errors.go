package domain

import "errors"

// Errores centinela que los llamadores deben poder distinguir.
var (
	// ErrNotFound indica que el registro buscado no existe
	ErrNotFound = errors.New("registro no encontrado")
	// ErrInvalidCredentials indica login/password incorrectos (distinto de un fallo de conexión)
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrStoreUnavailable indica que no se pudo alcanzar la base de datos
	ErrStoreUnavailable = errors.New("base de datos no disponible")
	// ErrLoginTaken indica que el login ya pertenece a otro usuario
	ErrLoginTaken = errors.New("el login ya está en uso")
	// ErrPasswordInUse indica que la contraseña ya pertenece a otro usuario
	ErrPasswordInUse = errors.New("la contraseña ya está en uso")
)
