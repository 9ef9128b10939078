package middleware

import (
	"net/http"
	"strings"

	"github.com/borantia/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	ContextActorID    = "actor_id"
	ContextActorEmail = "actor_email"
	ContextActorRole  = "actor_role"
)

// AuthRequired is a middleware that checks for a valid bearer token and
// attaches the actor identity to the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextActorID, claims.ActorID)
		c.Set(ContextActorEmail, claims.Email)
		c.Set(ContextActorRole, claims.Role)

		c.Next()
	}
}

// AuthOptional attaches the actor identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Used on public
// routes whose response is enriched for logged-in viewers.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := utils.ParseToken(parts[1]); err == nil {
			c.Set(ContextActorID, claims.ActorID)
			c.Set(ContextActorEmail, claims.Email)
			c.Set(ContextActorRole, claims.Role)
		}

		c.Next()
	}
}

// RoleRequired restricts a route to actors carrying the given role.
// Use models.RoleUser for applicant-only routes and models.RoleOrganization
// for posting-owner routes.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, exists := c.Get(ContextActorRole)
		if !exists || actual != role {
			c.JSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActorID gets the authenticated actor id from context.
func GetActorID(c *gin.Context) uint {
	if id, exists := c.Get(ContextActorID); exists {
		return id.(uint)
	}
	return 0
}

// GetActorEmail gets the authenticated actor email from context.
func GetActorEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextActorEmail); exists {
		return email.(string)
	}
	return ""
}

// GetActorRole gets the authenticated actor role from context.
func GetActorRole(c *gin.Context) string {
	if role, exists := c.Get(ContextActorRole); exists {
		return role.(string)
	}
	return ""
}
