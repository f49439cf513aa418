package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	"github.com/jcastellano/gestion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con usuario y contraseña.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña contra el hash bcrypt, genera el JWT con
// el conjunto de permisos y retorna token + usuario (sin contraseña).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" {
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.usuarioRepo.ObtenerCredenciales(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if u.Estado != entity.EstadoActivo {
		return nil, domain.ErrProhibido
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		u.ID, u.Usuario, u.NombreCompleto(), u.Permisos.Lista(),
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *AUsuarioResponse(u),
	}, nil
}

// AUsuarioResponse mapea la entidad a DTO. La contraseña nunca se serializa.
func AUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Usuario:       u.Usuario,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Cedula:        u.Cedula,
		Email:         u.Email,
		Telefono:      u.Telefono,
		Perfil:        u.Perfil,
		Permisos:      u.Permisos.Lista(),
		Estado:        u.Estado,
		FechaCreacion: u.FechaCreacion,
	}
}
