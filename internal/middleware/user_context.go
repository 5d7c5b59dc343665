package middleware

import (
	"fittracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const identityKey = "Identity"

// Identity is the authenticated caller for the current request.
type Identity struct {
	UserID   uint
	Username string
	Role     models.UserRole
}

// InjectIdentity copies the session identity into the request context once,
// so handlers never read the session themselves.
func InjectIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				username, _ := sess.Get("username").(string)
				roleStr, _ := sess.Get("role").(string)
				c.Set(identityKey, Identity{
					UserID:   uid,
					Username: username,
					Role:     models.UserRole(roleStr),
				})
			}
		}

		c.Next()
	}
}

// CurrentIdentity returns the identity set by InjectIdentity, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
