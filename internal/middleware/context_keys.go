package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the ID of the user performing the request. Authentication
// happens upstream; this service only records who acted.
const ActorHeader = "X-Actor-ID"

// actorIDKey is the key used to store the acting user's ID.
const actorIDKey = contextKey("actorID")

// ActorMiddleware copies the actor header into the context. When required is true,
// requests without it are rejected with 401.
func ActorMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actorID == "" {
			if required {
				GetLoggerFromCtx(c.Request.Context()).Warn("Missing actor header")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + ActorHeader + " header"})
				return
			}
			c.Next()
			return
		}

		c.Set(string(actorIDKey), actorID)
		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("actor_id", actorID)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorVal, exists := c.Get(string(actorIDKey))
	if !exists {
		if v, ok := c.Request.Context().Value(actorIDKey).(string); ok && v != "" {
			return v, true
		}
		return "", false
	}

	actorID, ok := actorVal.(string)
	if !ok {
		return "", false
	}
	return actorID, true
}
