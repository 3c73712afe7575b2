package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyIsSystem = "is_system"
	SessionKeyUserName = "user_name"
)

var ErrSessionValueMissing = errors.New("session değeri bulunamadı")

// SessionStart locals'a konan store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionKeyUserID)
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	default:
		return 0, ErrSessionValueMissing
	}
}

// GetIsSystemFromSession oturumdaki yönetici bayrağını okur.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	if v, ok := sess.Get(SessionKeyIsSystem).(bool); ok {
		return v, nil
	}
	return false, ErrSessionValueMissing
}
