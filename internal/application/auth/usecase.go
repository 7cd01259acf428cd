package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
	"github.com/ozkanv/teknopark-api/pkg/jwt"
)

// AuthUseCase login/logout con JWT. La identidad existe para atribuir cada
// mutación en la bitácora; no hay enforcement de permisos por rol.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	auditRepo  repository.AuditLogRepository
	jwtSecret  string
	issuer     string
	expMinutes int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository, jwtSecret, issuer string, expMinutes int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		jwtSecret:  jwtSecret,
		issuer:     issuer,
		expMinutes: expMinutes,
	}
}

// Login valida credenciales y emite el token. Todo login queda en la bitácora
// como entrada AUTH (oculta por defecto en los listados).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Name, user.Role, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.writeAuthEntry(user, fmt.Sprintf("Inicio de sesión de %s", user.Email)); err != nil {
		return nil, fmt.Errorf("registrar inicio de sesión: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

// Logout registra el cierre de sesión en la bitácora. El token es stateless:
// no hay revocación del lado del servidor.
func (uc *AuthUseCase) Logout(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.writeAuthEntry(user, fmt.Sprintf("Cierre de sesión de %s", user.Email)); err != nil {
		return fmt.Errorf("registrar cierre de sesión: %w", err)
	}
	return nil
}

// writeAuthEntry deja el rastro AUTH de la sesión. Sin rastro no hay sesión:
// el fallo se propaga y el login/logout se rechaza.
func (uc *AuthUseCase) writeAuthEntry(user *entity.User, details string) error {
	now := time.Now()
	return uc.auditRepo.Create(&entity.AuditLogEntry{
		ID:         uuid.New().String(),
		TraceID:    uuid.New().String(),
		Timestamp:  now,
		User:       user.Name,
		UserRole:   user.Role,
		Action:     entity.ActionCreate,
		EntityType: entity.EntityTypeAuth,
		Details:    details,
		CreatedAt:  now,
	})
}
