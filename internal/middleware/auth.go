package middleware

import (
	"strings"

	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware mendekode token dinamis dan menaruh Principal di
// context. Varian principal (pelajar/mentor vs admin) ditentukan dari
// bentuk klaim id, bukan dari endpoint.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		principal, err := util.ParseDynamicToken(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("principal", principal)
		c.Next()
	}
}

// UserMiddleware menolak principal yang bukan pelajar/mentor.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := util.GetPrincipalFromContext(c)
		if p == nil || p.Kind != util.PrincipalUser {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware memastikan principal admin benar-benar ada di tabel
// admin; token valid dengan id tak dikenal tetap ditolak.
func AdminMiddleware(authz *service.AuthzService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := util.GetPrincipalFromContext(c)
		if p == nil || p.Kind != util.PrincipalAdmin {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		admin, err := authz.RequireAdmin(p.AdminID)
		if err != nil {
			util.DomainError(c, err)
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
