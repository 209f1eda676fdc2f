package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"phoneshop/internal/http/handlers"
	"phoneshop/internal/repos"
	"phoneshop/internal/services"
)

// newTestApp mirrors the route wiring in cmd/phoneshop without the rate
// limiters.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	authSvc := services.NewAuthService(repos.NewUserRepo(db), "test-secret", time.Hour)
	deps := handlers.NewDeps(db, authSvc)

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", deps.PublicHandler.Page)

	api := app.Group("/api")
	api.Get("/public/products", deps.PublicHandler.List)

	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)

	gate := handlers.RequireAuth(authSvc)
	auth.Get("/me", gate, deps.AuthHandler.Me)

	bills := api.Group("/bills", gate)
	bills.Get("/", deps.BillHandler.List)
	bills.Post("/", deps.BillHandler.Create)

	products := api.Group("/products", gate)
	products.Get("/", deps.ProductHandler.List)
	products.Post("/", deps.ProductHandler.Create)
	products.Put("/:id", deps.ProductHandler.Update)
	products.Delete("/:id", deps.ProductHandler.Delete)

	investments := api.Group("/investments", gate)
	investments.Get("/", deps.InvestmentHandler.List)
	investments.Get("/:id", deps.InvestmentHandler.Get)
	investments.Post("/", deps.InvestmentHandler.Create)
	investments.Put("/:id", deps.InvestmentHandler.Update)
	investments.Delete("/:id", deps.InvestmentHandler.Delete)

	servicesGrp := api.Group("/services", gate)
	servicesGrp.Get("/", deps.ServiceHandler.List)
	servicesGrp.Get("/:id", deps.ServiceHandler.Get)
	servicesGrp.Post("/", deps.ServiceHandler.Create)
	servicesGrp.Put("/:id", deps.ServiceHandler.Update)
	servicesGrp.Delete("/:id", deps.ServiceHandler.Delete)

	profits := api.Group("/profits", gate)
	profits.Get("/", deps.ProfitHandler.List)
	profits.Post("/", deps.ProfitHandler.Upsert)
	profits.Post("/recalculate", deps.ProfitHandler.Recalculate)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

// loginAs registers the user (ignoring duplicates) and returns a valid token.
func loginAs(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": password}
	doJSON(t, app, "POST", "/api/auth/register", "", creds)
	resp, raw := doJSON(t, app, "POST", "/api/auth/login", "", creds)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d %s", resp.StatusCode, raw)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Token == "" {
		t.Fatal("no token in login response")
	}
	return out.Token
}
