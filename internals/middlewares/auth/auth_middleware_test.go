package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"gestordocumental_backend/internals/configs"
)

func appConAuth(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware(), func(c *fiber.Ctx) error {
		p, _ := GetPrincipal(c)
		return c.JSON(p)
	})
	return app
}

func firmar(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	t.Cleanup(func() { configs.JWTSecret = "" })

	app := appConAuth(t)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("token válido", func(t *testing.T) {
		tok := firmar(t, configs.JWTSecret, jwt.MapClaims{"id": float64(7), "email": "a@b.c", "exp": exp})
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, esperado 200", resp.StatusCode)
		}
	})

	t.Run("sin header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protegida", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, esperado 401", resp.StatusCode)
		}
	})

	t.Run("formato incorrecto", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, esperado 401", resp.StatusCode)
		}
	})

	t.Run("firmado con otro secreto", func(t *testing.T) {
		tok := firmar(t, "otro-secreto", jwt.MapClaims{"id": float64(7), "exp": exp})
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, esperado 401", resp.StatusCode)
		}
	})

	t.Run("expirado", func(t *testing.T) {
		tok := firmar(t, configs.JWTSecret, jwt.MapClaims{"id": float64(7), "exp": time.Now().Add(-time.Minute).Unix()})
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, esperado 401", resp.StatusCode)
		}
	})

	t.Run("sin user id", func(t *testing.T) {
		tok := firmar(t, configs.JWTSecret, jwt.MapClaims{"email": "a@b.c", "exp": exp})
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, esperado 401", resp.StatusCode)
		}
	})
}

func TestAuthMiddlewareSinSecret(t *testing.T) {
	configs.JWTSecret = ""
	app := appConAuth(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer lo-que-sea")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, esperado 500", resp.StatusCode)
	}
}

func TestOnlyRoles(t *testing.T) {
	app := fiber.New()
	rol := "capturista"
	app.Get("/admin", func(c *fiber.Ctx) error {
		SetPrincipal(c, Principal{UserID: 1, Rol: &rol})
		return c.Next()
	}, OnlyRoles("admin", "superAdmin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/anonima", OnlyRoles("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("rol insuficiente: status = %d, esperado 403", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/anonima", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("sin principal: status = %d, esperado 401", resp.StatusCode)
	}
}
