package auth

import "context"

// Claims es lo que el servicio necesita saber del usuario autenticado.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
