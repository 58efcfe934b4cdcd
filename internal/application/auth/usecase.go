package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Diego-69/taller-aplicaciones/internal/application/dto"
	"github.com/Diego-69/taller-aplicaciones/internal/domain"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/repository"
	"github.com/Diego-69/taller-aplicaciones/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: verifica credenciales contra el
// hash bcrypt almacenado y registra cada intento en el log de acceso.
//
// Contrato de auditoría: cada llamada a Login inserta exactamente una entrada
// en el log, cualquiera sea el resultado. Si ese insert falla, el login NO se
// considera exitoso aunque la contraseña fuera correcta.
type AuthUseCase struct {
	credRepo repository.CredentialRepository
	logRepo  repository.AccessLogRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credRepo repository.CredentialRepository, logRepo repository.AccessLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, logRepo: logRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y devuelve el descriptor de sesión con su
// token firmado.
//
// Todas las causas de rechazo (username inexistente, contraseña incorrecta,
// cuenta desactivada) devuelven el mismo domain.ErrInvalidCredentials: el
// caller nunca puede distinguir cuál falló. Un fallo del store se reporta como
// domain.ErrStoreUnavailable.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	cred, err := uc.credRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: consulta de credencial: %v", domain.ErrStoreUnavailable, err)
	}

	if cred == nil {
		// Username desconocido: se audita igual, sin identidad de sujeto.
		if err := uc.record(ctx, nil, false, in.OriginIP); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	// Cuenta desactivada: mismo tratamiento externo que una contraseña
	// incorrecta, para no filtrar que la cuenta existe pero está inactiva.
	if !cred.Active {
		if err := uc.record(ctx, &cred.ID, false, in.OriginIP); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		if err := uc.record(ctx, &cred.ID, false, in.OriginIP); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.record(ctx, &cred.ID, true, in.OriginIP); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.ID, cred.RoleName, cred.WorkerRUT, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token de sesión: %w", err)
	}

	return &dto.SessionResponse{
		Token:     token,
		UserID:    cred.ID,
		Username:  cred.Username,
		Role:      cred.RoleName,
		WorkerRUT: cred.WorkerRUT,
	}, nil
}

// record inserta la entrada de auditoría del intento. Un fallo se escala como
// ErrStoreUnavailable; nunca se silencia.
func (uc *AuthUseCase) record(ctx context.Context, credentialID *string, success bool, originIP string) error {
	entry := &entity.AccessLogEntry{
		ID:           uuid.New().String(),
		CredentialID: credentialID,
		Success:      success,
		OriginIP:     originIP,
		CreatedAt:    time.Now(),
	}
	if err := uc.logRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: registro de acceso: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
