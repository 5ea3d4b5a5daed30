package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "simak_session"

// SessionProtected returns a middleware guarding the data-management routes.
// Requests without a valid session cookie are redirected to the login page.
func SessionProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookieName)
		if tokenString == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}

		username, err := claims.GetSubject()
		if err != nil || username == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals("username", username)

		return c.Next()
	}
}
