package entity

import "time"

// Roles de usuario. El rol viaja en el JWT y se registra en la auditoría;
// la aplicación no hace enforcement de permisos por rol.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleLectura  = "lectura"
)

// User usuario del back-office del operador del parque.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
