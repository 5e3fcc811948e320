package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrIndexOutOfRange = errors.New("índice fuera de rango")
	ErrUnavailable     = errors.New("operación no disponible")
)
