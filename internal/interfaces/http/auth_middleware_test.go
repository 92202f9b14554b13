package http_test

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	apphttp "github.com/babetech/borastock/internal/interfaces/http"
	"github.com/babetech/borastock/pkg/jwt"
)

const testSecret = "secret-de-test-suffisamment-long"

// newProtectedApp monte une route protégée qui renvoie l'identité vue par le
// handler, pour vérifier ce que le middleware place dans le contexte.
func newProtectedApp(perm entity.Permission) *fiber.App {
	app := fiber.New()
	group := app.Group("/api", apphttp.AuthMiddleware(testSecret))
	group.Get("/ping", apphttp.RequirePermission(perm), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestAuthMiddleware_TokenValide(t *testing.T) {
	app := newProtectedApp(entity.PermReadProducts)
	token, err := jwt.Generate(testSecret, "USR_test", string(entity.RoleViewer), "borastock-test", 60)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "USR_test")
	assert.Contains(t, body, string(entity.RoleViewer))
}

func TestAuthMiddleware_Refus(t *testing.T) {
	app := newProtectedApp(entity.PermReadProducts)

	tests := []struct {
		name   string
		header string
	}{
		{"en-tête absent", ""},
		{"mauvais schéma", "Basic abc"},
		{"token vide", "Bearer "},
		{"token illisible", "Bearer pas.un.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doRequest(t, app, tt.header)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_TokenExpire(t *testing.T) {
	app := newProtectedApp(entity.PermReadProducts)
	token, err := jwt.Generate(testSecret, "USR_test", string(entity.RoleViewer), "borastock-test", -1)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MauvaisSecret(t *testing.T) {
	app := newProtectedApp(entity.PermReadProducts)
	token, err := jwt.Generate("un-autre-secret", "USR_test", string(entity.RoleViewer), "borastock-test", 60)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	// L'écriture produit est refusée à l'observateur, accordée au
	// gestionnaire.
	app := newProtectedApp(entity.PermWriteProducts)

	viewer, err := jwt.Generate(testSecret, "USR_viewer", string(entity.RoleViewer), "borastock-test", 60)
	require.NoError(t, err)
	resp, body := doRequest(t, app, "Bearer "+viewer)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "Permission refusée")

	manager, err := jwt.Generate(testSecret, "USR_manager", string(entity.RoleManager), "borastock-test", 60)
	require.NoError(t, err)
	resp, _ = doRequest(t, app, "Bearer "+manager)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWT_GenerateParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "USR_abc", string(entity.RoleAdmin), "borastock", 60)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "USR_abc", userID)
	assert.Equal(t, string(entity.RoleAdmin), role)

	_, err = jwt.Generate("", "USR_abc", string(entity.RoleAdmin), "borastock", 60)
	assert.Error(t, err, "un secret vide est refusé")
}
