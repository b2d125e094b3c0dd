package visit

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie session that carries the visit id.
	SessionName  = "niva-visit"
	sessionKeyID = "visit_id"
	contextKey   = "visit"
)

// Middleware attaches the caller's Visit to the echo context, starting a new
// visit and setting the cookie when the request has none. It must run after
// the session middleware.
func Middleware(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if sess == nil {
				return fmt.Errorf("visit session: %w", err)
			}
			if err != nil {
				// A cookie we cannot decode just means a fresh visit.
				slog.Debug("discarding unreadable visit session", "error", err)
			}

			id, _ := sess.Values[sessionKeyID].(string)
			v, created := store.Resolve(id)
			if created {
				sess.Values[sessionKeyID] = v.ID
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return err
				}
			}

			c.Set(contextKey, v)
			return next(c)
		}
	}
}

// FromContext returns the visit attached by Middleware, or nil.
func FromContext(c echo.Context) *Visit {
	v, _ := c.Get(contextKey).(*Visit)
	return v
}
