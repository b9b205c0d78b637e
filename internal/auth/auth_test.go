package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func tokenApp(claims jwt.MapClaims, handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	route := append(handlers, func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/guarded", route...)
	return app
}

func TestFromCtx(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"user_id": float64(7),
			"email":   "p@x.com",
			"role":    "TEACHER",
		}})
		return c.Next()
	})
	app.Get("/", func(c *fiber.Ctx) error {
		p, err := FromCtx(c)
		if err != nil {
			t.Fatalf("FromCtx failed: %v", err)
		}
		if p.UserID != 7 || p.Email != "p@x.com" || p.Role != "TEACHER" {
			t.Fatalf("unexpected principal %+v", p)
		}
		return c.SendString("ok")
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatal(err)
	}
}

func TestFromCtx_NoToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := FromCtx(c); err == nil {
			t.Fatal("expected error without a token in locals")
		}
		return c.SendString("ok")
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatal(err)
	}
}

func TestRequireRole(t *testing.T) {
	// matching role passes through
	app := tokenApp(jwt.MapClaims{"user_id": float64(1), "role": "STUDENT"}, RequireRole("STUDENT"))
	res, _ := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for matching role, got %d", res.StatusCode)
	}

	// wrong role -> 403
	app2 := tokenApp(jwt.MapClaims{"user_id": float64(1), "role": "STUDENT"}, RequireRole("TEACHER"))
	res2, _ := app2.Test(httptest.NewRequest("GET", "/guarded", nil))
	if res2.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for role mismatch, got %d", res2.StatusCode)
	}

	// no token -> 401
	app3 := tokenApp(nil, RequireRole("TEACHER"))
	res3, _ := app3.Test(httptest.NewRequest("GET", "/guarded", nil))
	if res3.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res3.StatusCode)
	}
}
