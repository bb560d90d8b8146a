// Package session carries the request principal in a signed JWT cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

const (
	DefaultCookieName = "tinyapp_session"
	DefaultTTL        = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	jwt.RegisteredClaims
	Anonymous bool `json:"anon,omitempty"`
}

type Option func(*Manager)

func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithSecure restricts the cookie to HTTPS.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithClock replaces the clock used to stamp and validate tokens.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager issues, reads and clears session cookies.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(secret string, opts ...Option) *Manager {
	m := &Manager{
		secret:     []byte(secret),
		cookieName: DefaultCookieName,
		ttl:        DefaultTTL,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue signs a token for principal and sets it as the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, principal entity.Principal) error {
	const op = "session.Manager.Issue"

	if principal.IsZero() {
		return fmt.Errorf("%s: empty principal", op)
	}

	token, err := m.sign(principal)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Principal reads the principal from the request cookie.
// A request without the cookie yields the zero principal and no error.
func (m *Manager) Principal(r *http.Request) (entity.Principal, error) {
	const op = "session.Manager.Principal"

	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return entity.Principal{}, nil
		}
		return entity.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	principal, err := m.parse(cookie.Value)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	return principal, nil
}

// Middleware attaches the session principal to the request context.
// Unreadable or expired cookies are cleared and the request continues without a principal.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.Principal(r)
		if err != nil {
			httplog.LogEntrySetField(r.Context(), "session_err", slog.StringValue(err.Error()))
			m.Clear(w)
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func (m *Manager) sign(principal entity.Principal) (string, error) {
	now := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Anonymous: principal.Anonymous,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) parse(raw string) (entity.Principal, error) {
	var c claims

	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if c.Subject == "" {
		return entity.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return entity.Principal{ID: c.Subject, Anonymous: c.Anonymous}, nil
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, principal)
}

// FromContext returns the principal attached by Middleware, or the zero principal.
func FromContext(ctx context.Context) entity.Principal {
	principal, _ := ctx.Value(ctxKey{}).(entity.Principal)
	return principal
}
