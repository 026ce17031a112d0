package middleware

import (
	"encoding/json"
	"time"

	"github.com/evandrarf/academiq-be/internal/delivery/http/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	SessionCookieName = "academiq_session"

	stateKey        = "state"
	localsState     = "session_state"
	localsSessionID = "session_id"
)

// NewSessionStore builds the in-memory session store. Expiration comes from
// session.expiration and defaults to 24h.
func NewSessionStore(config *viper.Viper) *session.Store {
	expiration := 24 * time.Hour
	if config != nil {
		if d := config.GetDuration("session.expiration"); d > 0 {
			expiration = d
		}
	}

	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
}

// SessionMiddleware loads the SessionState once per request and saves it
// back after the handler has run.
func (m *Middleware) SessionMiddleware() fiber.Handler {
	store := m.Sessions
	if store == nil {
		store = NewSessionStore(m.Config)
	}

	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		state := entity.NewSessionState()
		if raw, ok := sess.Get(stateKey).(string); ok && raw != "" {
			if err := json.Unmarshal([]byte(raw), state); err != nil {
				m.logWarn(err, sess.ID())
				state = entity.NewSessionState()
			}
		}
		if state.CurrentQuizQuestions == nil {
			state.CurrentQuizQuestions = []entity.QuizQuestion{}
		}

		c.Locals(localsState, state)
		c.Locals(localsSessionID, sess.ID())

		handlerErr := c.Next()

		encoded, err := json.Marshal(state)
		if err != nil {
			return err
		}
		sess.Set(stateKey, string(encoded))
		if err := sess.Save(); err != nil {
			return err
		}

		return handlerErr
	}
}

func (m *Middleware) logWarn(err error, sessionID string) {
	if m.Log == nil {
		return
	}
	m.Log.WithError(err).WithField("session_id", sessionID).Warn("discarding unreadable session state")
}

// StateFrom returns the SessionState loaded by SessionMiddleware. A fresh
// state is returned when the middleware did not run.
func StateFrom(c *fiber.Ctx) *entity.SessionState {
	if state, ok := c.Locals(localsState).(*entity.SessionState); ok && state != nil {
		return state
	}
	state := entity.NewSessionState()
	c.Locals(localsState, state)
	return state
}

func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsSessionID).(string)
	return id
}
