package middleware

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

const defaultSessionMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware gives every shopper a signed session cookie. Carts,
// filters and checkout state are keyed by the id it carries.
type SessionMiddleware struct {
	codec  *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
	logger *slog.Logger
}

// NewSessionMiddleware decodes the base64 keys from config. Without a hash
// key a random one is generated, so sessions do not survive a restart.
func NewSessionMiddleware(cfg *config.Config, logger *slog.Logger) (*SessionMiddleware, error) {
	hashKey, err := decodeKey(cfg.Session.HashKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session hash key")
	}
	if hashKey == nil {
		logger.Warn("No session hash key configured, generating an ephemeral one")
		hashKey = securecookie.GenerateRandomKey(64)
	}

	blockKey, err := decodeKey(cfg.Session.BlockKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session block key")
	}
	if blockKey != nil && len(blockKey) != 16 && len(blockKey) != 24 && len(blockKey) != 32 {
		return nil, errors.Errorf("session block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
	}

	maxAge := cfg.Session.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(maxAge)

	return &SessionMiddleware{
		codec:  codec,
		name:   cfg.Session.CookieName,
		maxAge: maxAge,
		secure: cfg.Session.Secure,
		logger: logger,
	}, nil
}

func decodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}

	return base64.URLEncoding.DecodeString(encoded)
}

// Handle resolves the session id, issuing a fresh cookie when none is valid.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := m.read(c)
		if !ok {
			var err error
			sessionID, err = m.issue(c)
			if err != nil {
				return err
			}
		}

		deliverycontext.SetSessionID(c, sessionID)

		return next(c)
	}
}

func (m *SessionMiddleware) read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.name)
	if err != nil {
		return "", false
	}

	var sessionID string
	if err := m.codec.Decode(m.name, cookie.Value, &sessionID); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Discarding unreadable session cookie", slog.Any("error", err))

		return "", false
	}

	return sessionID, sessionID != ""
}

func (m *SessionMiddleware) issue(c echo.Context) (string, error) {
	sessionID := uuid.New().String()
	encoded, err := m.codec.Encode(m.name, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode session cookie")
	}

	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID, nil
}
