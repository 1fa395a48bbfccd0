package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
)

const (
	ContextToken    = "token"
	ContextSession  = "session"
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"
)

const (
	RoleAdmin    = "admin"
	RoleStylist  = "stylist"
	RoleCustomer = "customer"
)

// stylistAliases are role names the backend uses for salon staff.
var stylistAliases = map[string]string{
	"employee":    RoleStylist,
	"hairstylist": RoleStylist,
}

// AuthMiddleware verifies the bearer token against the shared HMAC secret
// and exposes its claims. The raw token is kept for forwarding.
func AuthMiddleware(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "not authenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "not authenticated")
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(parts[1])

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			if len(key) == 0 {
				return nil, jwt.ErrInvalidKey
			}
			return key, nil
		})
		if errors.Is(err, jwt.ErrTokenExpired) {
			httperr.Unauthorized(c, "token_expired", "session expired")
			c.Abort()
			return
		}
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "not authenticated")
			c.Abort()
			return
		}

		userID := claimString(claims, "sub", "user_id", "userId")
		if userID == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "not authenticated")
			c.Abort()
			return
		}

		salonID, _ := strconv.ParseInt(claimString(claims, "salon_id", "salonId"), 10, 64)

		c.Set(ContextToken, tokenString)
		c.Set(ContextSession, SessionKey(tokenString))
		c.Set(ContextUserID, userID)
		c.Set(ContextSalonID, salonID)
		c.Set(ContextUserRole, NormalizeRole(claimString(claims, "role")))

		c.Next()
	}
}

// SessionKey identifies one login without keeping the token itself.
func SessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NormalizeRole lower-cases a role and folds staff aliases into stylist.
func NormalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if alias, ok := stylistAliases[role]; ok {
		return alias
	}
	return role
}

// RequireRole lets the request through only for the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ContextUserRole)]; !ok {
			httperr.Forbidden(c, "forbidden_role", "not allowed for this role")
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case nil:
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}
