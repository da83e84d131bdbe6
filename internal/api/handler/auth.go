package handler

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"manmitra/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("manmitra-dev-secret")
}

// GenerateToken mints a JWT carrying the anonymous ID and role.
// Student tokens come from GetAnonID; counselor and admin tokens are
// minted operator-side through the admin CLI.
func GenerateToken(anonID, role string) (string, error) {
	claims := jwt.MapClaims{
		"anon_id": anonID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
		"iss":     "manmitra-service",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a token and returns its anonymous ID and role.
func ParseToken(tokenString string) (anonID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}

	anonID, _ = claims["anon_id"].(string)
	role, _ = claims["role"].(string)
	if anonID == "" {
		return "", "", fmt.Errorf("token missing anon_id claim")
	}
	if role == "" {
		role = models.RoleStudent
	}
	return anonID, role, nil
}

// GetAnonID creates a fresh anonymous student identity and returns a
// JWT for it.
func (h *Handler) GetAnonID(c *gin.Context) {
	anonUUID, _ := uuid.NewRandom()
	anonID := anonUUID.String()

	token, err := GenerateToken(anonID, models.RoleStudent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "anon_id": anonID, "role": models.RoleStudent})
}

// AuthRequired validates the bearer token and stores the caller's
// identity and role on the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		anonID, role, err := ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}

		c.Set("anon_id", anonID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
// Authorization failures are explicit, never silent no-ops.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this action"})
	}
}
