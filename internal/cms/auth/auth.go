// Package auth issues and verifies tenant-scoped API tokens and resolves
// them into request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the tenant scope of an API token.
type Claims struct {
	TenantID string `json:"tenantId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tenant tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
}

// NewManager creates a token manager. An empty secret disables token
// verification entirely: every request is anonymous.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Enabled reports whether token verification is configured.
func (m *Manager) Enabled() bool {
	return len(m.secret) > 0
}

// Issue signs a token scoping the bearer to one tenant.
func (m *Manager) Issue(tenantID, role string, ttl time.Duration) (string, error) {
	if !m.Enabled() {
		return "", errors.New("auth is not configured")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "siteforge",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TenantID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type tenantKeyType struct{}

var tenantKey = tenantKeyType{}

// WithTenant stores the tenant id in context.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey, tenantID)
}

// TenantFrom retrieves the tenant id from context, if any.
func TenantFrom(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantKey).(string)
	return tenantID, ok && tenantID != ""
}

// Middleware resolves a Bearer token into the request context. Requests
// without a token pass through anonymously; handlers decide per operation
// whether a tenant is required. A present-but-invalid token is rejected.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			http.Error(w, "malformed authorization header", http.StatusUnauthorized)
			return
		}
		claims, err := m.Verify(tokenString)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), claims.TenantID)))
	})
}
