package middleware

import (
	"oecd_explorer/internal/model"
	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

// ContextIdentity 上下文中学习者身份的键
const ContextIdentity = "identity"

type IdentitySource interface {
	Identity() *model.Identity
}

// RequireIdentity 未完成入门（没有身份）时拒绝访问
func RequireIdentity(source IdentitySource) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := source.Identity()
		if identity == nil {
			util.Forbidden(c, util.ErrNotOnboarded.Error())
			c.Abort()
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity placed by RequireIdentity, or nil.
func IdentityFromContext(c *gin.Context) *model.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	identity, _ := v.(*model.Identity)
	return identity
}
