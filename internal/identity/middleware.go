package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// Middleware resolves the session for every request. Browsers cannot set headers on
// WebSocket upgrades, so an access_token query parameter is accepted as well.
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			if token := c.Query("access_token"); token != "" {
				authorization = "Bearer " + token
			}
		}

		session, err := v.Resolve(c.Request.Context(), authorization, c.GetHeader(MemberHeader))
		if err != nil {
			v.logger.WithError(err).WithField("path", c.FullPath()).Warn("Rejected credentials")
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(sessionContextKey, session)
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))
		c.Next()
	}
}

// SessionFrom returns the session the middleware stored, or an anonymous one.
func SessionFrom(c *gin.Context) *Session {
	if val, ok := c.Get(sessionContextKey); ok {
		if s, ok := val.(*Session); ok && s != nil {
			return s
		}
	}
	return Anonymous()
}

// RequireMember rejects anonymous requests.
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsAuthenticated() {
			abortUnauthorized(c, "authentication required")
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
