package middleware

import (
	"parkside-realty/internal/auth"
	"parkside-realty/internal/models"
	"parkside-realty/internal/services"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// Identity resolves the session cookie to an Actor once per request. An
// invalid or absent session leaves the request anonymous; route handlers
// decide whether that is acceptable.
func Identity(accounts *services.AccountService, cookieName, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := auth.ValidateSessionToken(token, secret)
		if err != nil {
			c.Next()
			return
		}

		actor, err := accounts.Actor(c.Request.Context(), claims.AccountID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// CurrentActor returns the resolved acting identity, or nil for anonymous
// requests.
func CurrentActor(c *gin.Context) *models.Actor {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, ok := value.(*models.Actor)
	if !ok {
		return nil
	}
	return actor
}
