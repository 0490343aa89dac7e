package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Identity                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// Identity is the authenticated caller injected into r.Context().
// It is always built from the users collection, never from client state.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && strings.EqualFold(i.Role, "admin")
}

// UserFetcher loads the current state of a user on every request.
// It returns nil when the user is missing, malformed or inactive.
type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) *Identity
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the identity and a "found?" flag.
func CurrentUser(r *http.Request) (*Identity, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Identity)
	return u, ok && u != nil
}

// WithIdentity returns r carrying id. Used by LoadUser and by tests.
func WithIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, id))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Tokens                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ErrInvalidToken covers every verification failure.
var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies tokens and provides the auth middleware.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	domain     string
	secure     bool
	fetcher    UserFetcher
	log        *zap.Logger
}

// NewManager validates the secret and returns a Manager.
//
// In production (secure=true) cookies are Secure + SameSite=None so the
// admin console can call the API cross-site over HTTPS. In local dev over
// http://localhost use secure=false so cookies are accepted.
func NewManager(secret string, ttl time.Duration, cookieName, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	if cookieName == "" {
		cookieName = "auth-token"
	}
	return &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		domain:     domain,
		secure:     secure,
		log:        logger,
	}, nil
}

// SetUserFetcher makes LoadUser re-read the user from the database on
// every request so role changes and deactivations apply immediately.
func (m *Manager) SetUserFetcher(f UserFetcher) { m.fetcher = f }

// CookieName returns the auth cookie's name.
func (m *Manager) CookieName() string { return m.cookieName }

// Issue signs a token for id and returns it with its expiry.
func (m *Manager) Issue(id Identity) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm and expiry.
func (m *Manager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimsFromRequest verifies the auth cookie and, when it is absent or
// fails verification, the Bearer header.
func (m *Manager) ClaimsFromRequest(r *http.Request) (*Claims, error) {
	var candidates []string
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		candidates = append(candidates, c.Value)
	}
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		candidates = append(candidates, strings.TrimSpace(h[7:]))
	}
	for _, token := range candidates {
		if claims, err := m.Verify(token); err == nil {
			return claims, nil
		}
	}
	return nil, ErrInvalidToken
}

// SetCookie stores token in an HttpOnly cookie.
func (m *Manager) SetCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, m.cookie(token, exp, int(time.Until(exp).Seconds())))
}

// ClearCookie expires the auth cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0), -1))
}

func (m *Manager) cookie(value string, exp time.Time, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		Expires:  exp,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
	}
	if m.secure {
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.SameSite = http.SameSiteLaxMode
	}
	return c
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadUser injects the caller's identity into context when a valid token
// names an active user. Any failure leaves the request anonymous.
func (m *Manager) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.ClaimsFromRequest(r)
		if err != nil {
			m.log.Debug("auth: token rejected", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		var id *Identity
		if m.fetcher != nil {
			id = m.fetcher.FetchUser(r.Context(), claims.UserID)
		} else {
			id = &Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
		}
		if id != nil {
			r = WithIdentity(r, id)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn rejects anonymous callers with 401.
func (m *Manager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anyone who is not a signed-in admin with 403.
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := CurrentUser(r); !ok || !u.IsAdmin() {
			jsonutil.Error(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
