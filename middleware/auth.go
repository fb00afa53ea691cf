package middleware

import (
	"kartvizid/models"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ProfileEnsurer creates the local profile for a user seen for the first time
type ProfileEnsurer interface {
	Ensure(userID, email, fullName, role string) (*models.Profile, error)
}

// AuthConfig describes how bearer tokens issued by the identity provider are verified
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// Claims carried by identity provider access tokens
type Claims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (c *Claims) metadata(key string) string {
	if c.UserMetadata == nil {
		return ""
	}
	s, _ := c.UserMetadata[key].(string)
	return s
}

// AuthRequired verifies the HS256 bearer token, makes sure a profile exists
// for its subject and stores the caller identity in the request locals
func AuthRequired(cfg AuthConfig, profiles ProfileEnsurer, logger *slog.Logger) fiber.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "missing bearer token")
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if raw == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		})
		if err != nil || token == nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}

		if claims.Subject == "" {
			return unauthorized(c, "missing subject")
		}

		profile, err := profiles.Ensure(claims.Subject, claims.Email, claims.metadata("full_name"), claims.metadata("role"))
		if err != nil {
			logger.Error("failed to load profile", "user_id", claims.Subject, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":      "profile unavailable",
				"message":    "Bir hata oluştu, lütfen tekrar deneyin.",
				"request_id": requestID(c),
			})
		}

		c.Locals("userID", claims.Subject)
		c.Locals("userEmail", claims.Email)
		c.Locals("role", string(profile.Role))

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":      reason,
		"message":    "Oturumunuzun süresi doldu, lütfen tekrar giriş yapın.",
		"request_id": requestID(c),
	})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

func GetUserEmail(c *fiber.Ctx) string {
	email, ok := c.Locals("userEmail").(string)
	if !ok {
		return ""
	}
	return email
}

func GetRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("role").(string)
	return models.Role(role)
}
