package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-fabrica/internal/application/dto"
	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials la cuenta de operador configurada por entorno. El sistema tiene
// una sola cuenta; no hay registro de usuarios.
type Credentials struct {
	Usuario      string
	PasswordHash string // bcrypt
}

// AuthUseCase login del operador contra la cuenta configurada.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica usuario y password (bcrypt) y emite un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Usuario != uc.creds.Usuario {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Usuario, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: in.Usuario}, nil
}
