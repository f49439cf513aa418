package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellano/gestion-api/internal/application/auth"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	pkgjwt "github.com/jcastellano/gestion-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	repository.UsuarioRepository
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) ObtenerCredenciales(_ context.Context, usuario string) (*entity.Usuario, error) {
	return f.usuarios[usuario], nil
}

func nuevoAuthUC(t *testing.T, estado string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"jperez": {
			ID:         "u-1",
			Usuario:    "jperez",
			Contrasena: string(hash),
			Nombre:     "Juan",
			Apellido:   "Pérez",
			Permisos:   entity.NuevoConjuntoPermisos([]string{"ventas", "clientes"}),
			Estado:     estado,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "gestion-api-test",
	})
}

func TestLogin_Exitoso(t *testing.T) {
	uc := nuevoAuthUC(t, entity.EstadoActivo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Contrasena: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Token)

	// El token lleva la identidad y los permisos del usuario.
	claims, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "jperez", claims.Usuario)
	assert.Equal(t, "Juan Pérez", claims.Nombre)
	assert.ElementsMatch(t, []string{"ventas", "clientes"}, claims.Permisos)

	assert.Equal(t, "jperez", out.Usuario.Usuario)
	assert.Equal(t, entity.EstadoActivo, out.Usuario.Estado)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc := nuevoAuthUC(t, entity.EstadoActivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Contrasena: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := nuevoAuthUC(t, entity.EstadoActivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

// La contraseña correcta de un usuario inactivo no emite token.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := nuevoAuthUC(t, entity.EstadoInactivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "jperez", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := nuevoAuthUC(t, entity.EstadoActivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
