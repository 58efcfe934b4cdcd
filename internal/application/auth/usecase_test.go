package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Diego-69/taller-aplicaciones/internal/application/auth"
	"github.com/Diego-69/taller-aplicaciones/internal/application/dto"
	"github.com/Diego-69/taller-aplicaciones/internal/domain"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	pkgjwt "github.com/Diego-69/taller-aplicaciones/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCredentialRepo struct {
	creds map[string]*entity.Credential
	err   error
}

func (r *fakeCredentialRepo) GetByUsername(_ context.Context, username string) (*entity.Credential, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.creds[username], nil
}

type fakeAccessLogRepo struct {
	entries []entity.AccessLogEntry
	err     error
}

func (r *fakeAccessLogRepo) Append(_ context.Context, e *entity.AccessLogEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *e)
	return nil
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testOrigin = "127.0.0.1"
)

var testJWT = auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "sigerh-test"}

// hashOf genera un hash bcrypt real para que el verify del caso de uso sea el
// mismo camino que en producción. MinCost para que los tests sean rápidos.
func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func rrhhCredential(t *testing.T) *entity.Credential {
	return &entity.Credential{
		ID:           "b6f7c1c2-0000-0000-0000-000000000001",
		Username:     "rrhh.user",
		PasswordHash: hashOf(t, "12345"),
		RoleID:       2,
		RoleName:     entity.RoleRRHH,
		Active:       true,
	}
}

func newUseCase(t *testing.T, creds ...*entity.Credential) (*auth.AuthUseCase, *fakeAccessLogRepo) {
	t.Helper()
	credRepo := &fakeCredentialRepo{creds: map[string]*entity.Credential{}}
	for _, c := range creds {
		credRepo.creds[c.Username] = c
	}
	logRepo := &fakeAccessLogRepo{}
	return auth.NewAuthUseCase(credRepo, logRepo, testJWT), logRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, logRepo := newUseCase(t, rrhhCredential(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "rrhh.user", Password: "12345", OriginIP: testOrigin,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "rrhh.user", out.Username)
	assert.Equal(t, entity.RoleRRHH, out.Role)
	assert.Empty(t, out.WorkerRUT, "cuenta de gestión no tiene trabajador asociado")

	// El token devuelto debe ser parseable y portar la identidad de la sesión.
	userID, role, workerRUT, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, userID)
	assert.Equal(t, entity.RoleRRHH, role)
	assert.Empty(t, workerRUT)

	// Exactamente una entrada de auditoría, exitosa y contra el sujeto.
	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.True(t, entry.Success)
	require.NotNil(t, entry.CredentialID)
	assert.Equal(t, out.UserID, *entry.CredentialID)
	assert.Equal(t, testOrigin, entry.OriginIP)
	assert.NotEmpty(t, entry.ID)
}

func TestLogin_UsernameDesconocido(t *testing.T) {
	uc, logRepo := newUseCase(t, rrhhCredential(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "no.existe", Password: "12345", OriginIP: testOrigin,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Se audita igual, con sujeto nulo.
	require.Len(t, logRepo.entries, 1)
	assert.False(t, logRepo.entries[0].Success)
	assert.Nil(t, logRepo.entries[0].CredentialID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	cred := rrhhCredential(t)
	uc, logRepo := newUseCase(t, cred)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "rrhh.user", Password: "incorrecta", OriginIP: testOrigin,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.Len(t, logRepo.entries, 1)
	assert.False(t, logRepo.entries[0].Success)
	require.NotNil(t, logRepo.entries[0].CredentialID)
	assert.Equal(t, cred.ID, *logRepo.entries[0].CredentialID)
}

// Cuenta desactivada con contraseña CORRECTA: rechazo indistinguible de una
// contraseña incorrecta, con entrada fallida contra el sujeto.
func TestLogin_CuentaDesactivada(t *testing.T) {
	cred := rrhhCredential(t)
	cred.Active = false
	uc, logRepo := newUseCase(t, cred)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "rrhh.user", Password: "12345", OriginIP: testOrigin,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.Len(t, logRepo.entries, 1)
	assert.False(t, logRepo.entries[0].Success)
	require.NotNil(t, logRepo.entries[0].CredentialID)
	assert.Equal(t, cred.ID, *logRepo.entries[0].CredentialID)
}

// Dos intentos fallidos idénticos generan dos entradas independientes:
// el log no deduplica.
func TestLogin_IntentosFallidosNoSeDeduplica(t *testing.T) {
	uc, logRepo := newUseCase(t, rrhhCredential(t))

	in := dto.LoginRequest{Username: "rrhh.user", Password: "incorrecta", OriginIP: testOrigin}
	_, err1 := uc.Login(context.Background(), in)
	_, err2 := uc.Login(context.Background(), in)

	assert.ErrorIs(t, err1, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, err2, domain.ErrInvalidCredentials)

	require.Len(t, logRepo.entries, 2)
	assert.NotEqual(t, logRepo.entries[0].ID, logRepo.entries[1].ID)
}

// Las tres causas de rechazo devuelven exactamente el mismo error.
func TestLogin_CausasDeRechazoIndistinguibles(t *testing.T) {
	inactive := rrhhCredential(t)
	inactive.Username = "inactivo.user"
	inactive.ID = "b6f7c1c2-0000-0000-0000-000000000002"
	inactive.Active = false

	uc, _ := newUseCase(t, rrhhCredential(t), inactive)
	ctx := context.Background()

	_, errUnknown := uc.Login(ctx, dto.LoginRequest{Username: "fantasma", Password: "x"})
	_, errBadPass := uc.Login(ctx, dto.LoginRequest{Username: "rrhh.user", Password: "x"})
	_, errInactive := uc.Login(ctx, dto.LoginRequest{Username: "inactivo.user", Password: "12345"})

	assert.Equal(t, errUnknown, errBadPass)
	assert.Equal(t, errBadPass, errInactive)
}

// Si el insert de auditoría falla, el login no es exitoso aunque la
// contraseña sea correcta: la auditoría es parte del contrato.
func TestLogin_FalloDeAuditoriaEscala(t *testing.T) {
	credRepo := &fakeCredentialRepo{creds: map[string]*entity.Credential{
		"rrhh.user": rrhhCredential(t),
	}}
	logRepo := &fakeAccessLogRepo{err: errors.New("disco lleno")}
	uc := auth.NewAuthUseCase(credRepo, logRepo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "rrhh.user", Password: "12345", OriginIP: testOrigin,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestLogin_StoreCaidoEnConsulta(t *testing.T) {
	credRepo := &fakeCredentialRepo{err: errors.New("connection refused")}
	logRepo := &fakeAccessLogRepo{}
	uc := auth.NewAuthUseCase(credRepo, logRepo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "rrhh.user", Password: "12345", OriginIP: testOrigin,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, logRepo.entries, "sin store no hay dónde auditar")
}

// La sesión de un trabajador porta el rut asociado para la vista propia.
func TestLogin_TrabajadorPortaRUT(t *testing.T) {
	cred := &entity.Credential{
		ID:           "b6f7c1c2-0000-0000-0000-000000000003",
		Username:     "jperez",
		PasswordHash: hashOf(t, "clave-segura"),
		RoleID:       4,
		RoleName:     entity.RoleTrabajador,
		WorkerRUT:    "12345678-9",
		Active:       true,
	}
	uc, _ := newUseCase(t, cred)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "jperez", Password: "clave-segura", OriginIP: testOrigin,
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678-9", out.WorkerRUT)

	_, _, workerRUT, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "12345678-9", workerRUT)
}
