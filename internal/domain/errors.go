package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrCapacityExceeded    = errors.New("capacidad del piso excedida")
	ErrInvalidArea         = errors.New("área inválida")
	ErrFloorNotFound       = errors.New("piso no encontrado")
	ErrInvalidDateRange    = errors.New("rango de fechas inválido")
	ErrInvalidConfirmation = errors.New("frase de confirmación incorrecta")
	ErrCompanyAllocated    = errors.New("la empresa ya tiene una unidad activa")
)

// CapacityError detalla una violación de capacidad: siempre incluye el área
// restante para que el usuario pueda corregir sin adivinar.
type CapacityError struct {
	Floor        string
	RequestedSqM decimal.Decimal
	RemainingSqM decimal.Decimal
}

// Error implementa error.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacidad excedida en piso %s: solicitado %s m², disponible %s m²",
		e.Floor, e.RequestedSqM.String(), e.RemainingSqM.String())
}

// Unwrap permite errors.Is(err, ErrCapacityExceeded).
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
