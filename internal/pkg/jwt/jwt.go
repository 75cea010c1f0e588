// Package jwt verifies caller identity at the transport boundary. The core
// never sees tokens or permission strings; it receives the employee and
// decider IDs extracted here, already trusted.
package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidToken = errors.New("invalid or missing token")

// Identity is the verified caller passed down to handlers.
type Identity struct {
	EmployeeID string
	Admin      bool
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromContext(ctx context.Context) (Identity, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, ErrInvalidToken
	}

	admin, _ := claims["is_admin"].(bool)
	return Identity{EmployeeID: employeeID, Admin: admin}, nil
}
