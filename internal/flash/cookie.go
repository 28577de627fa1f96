package flash

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName identifies the browser the queued notices belong to.
const CookieName = "realty_notices"

const cookieMaxAge = 60 * 60 * 24 * 30

// browserKey returns the browser's notice key, setting the cookie when the
// browser doesn't have one yet.
func browserKey(c *gin.Context) string {
	if key, err := c.Cookie(CookieName); err == nil && key != "" {
		return key
	}
	key := uuid.New().String()
	c.SetCookie(CookieName, key, cookieMaxAge, "/", "", false, true)
	return key
}

// Notify queues a notice for the requesting browser.
func Notify(c *gin.Context, store Store, message string) {
	_ = store.Push(c.Request.Context(), browserKey(c), message)
}

// Consume drains the requesting browser's queued notices for rendering.
func Consume(c *gin.Context, store Store) []string {
	key, err := c.Cookie(CookieName)
	if err != nil || key == "" {
		return nil
	}
	messages, err := store.PopAll(c.Request.Context(), key)
	if err != nil {
		return nil
	}
	return messages
}
