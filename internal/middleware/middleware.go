package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by OAuth2Auth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

// OAuth2Auth validates the Bearer JWT issued by the token endpoint (RFC 6750)
// and stores uid, role and client in the Gin context
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrAuthorizationRequired,
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidRequest,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		claims, err := parseJWTToken(tokenString, jwtSecret)
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}

		if err := extractAndSetClaims(c, claims); err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}

		c.Next()
	}
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(errorCode, description))
}

// parseJWTToken validates signature, exp, nbf and iat of an HMAC signed token
func parseJWTToken(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// reject tokens whose alg header was switched away from HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return jwtSecret, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims format")
	}
	return claims, nil
}

// extractAndSetClaims extracts user information from JWT claims and sets it in the Gin context
func extractAndSetClaims(c *gin.Context, claims jwt.MapClaims) error {
	userID, err := extractUserID(claims)
	if err != nil {
		return err
	}
	c.Set(ContextUserID, userID)

	role, err := extractRole(claims)
	if err != nil {
		return err
	}
	c.Set(ContextUserRole, role)

	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 {
		c.Set(ContextClientID, aud[0])
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set(ContextScopes, scope)
	}
	return nil
}

// extractUserID reads the "uid" claim, sent as a numeric string or a JSON number
func extractUserID(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		parsedID, err := strconv.ParseUint(uid, 10, 32)
		if err != nil || parsedID == 0 {
			return 0, fmt.Errorf("invalid uid claim format: must be a positive numeric string, got: %q", uid)
		}
		return uint(parsedID), nil
	case float64:
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	default:
		return 0, fmt.Errorf("token missing required 'uid' claim. This token is not valid for this API")
	}
}

// extractRole reads the mandatory "role" claim
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token missing required 'role' claim. Tokens must explicitly specify user roles")
	}

	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}
}
