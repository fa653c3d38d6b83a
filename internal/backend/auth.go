package backend

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

const tokenTTL = 24 * time.Hour

var (
	ErrBackendNotConfigured = errors.New("backend not configured")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")
)

// Claims son los claims de sesión que viajan en el JWT.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken firma un JWT de sesión de 24h.
func GenerateToken(secret []byte, email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken valida la firma y la expiración.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthService delega las cuentas en la tabla de usuarios del backend.
// Sin backend configurado el storefront corre en modo invitado y estas
// operaciones devuelven ErrBackendNotConfigured.
type AuthService struct {
	connector *Connector
	secret    []byte
}

func NewAuthService(connector *Connector, secret []byte) *AuthService {
	return &AuthService{connector: connector, secret: secret}
}

// SignUp crea la cuenta con la contraseña hasheada con bcrypt.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	users, ok, err := s.connector.UsersTable(ctx)
	if !ok {
		return nil, ErrBackendNotConfigured
	}
	if err != nil {
		return nil, err
	}

	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     "user",
	}
	if err := users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifica la contraseña y devuelve el token de sesión.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *models.User, error) {
	users, ok, err := s.connector.UsersTable(ctx)
	if !ok {
		return "", nil, ErrBackendNotConfigured
	}
	if err != nil {
		return "", nil, err
	}

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.secret, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Session valida un token y devuelve sus claims.
func (s *AuthService) Session(tokenString string) (*Claims, error) {
	return ParseToken(s.secret, tokenString)
}
