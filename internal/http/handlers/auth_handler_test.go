package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/crypto/bcrypt"

	"artesania/internal/http/handlers"
	"artesania/internal/repos"
	"artesania/internal/services"
)

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestSeededPasswordsAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM sellers`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no sellers seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Artesano1!") {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Artesano1!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestLoginSuccessFailAndThrottle(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Sellers: repos.NewSellerRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}
	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)

	respForm, _ := app.Test(httptest.NewRequest("GET", "/login", nil))
	csrfTok := cookieValue(respForm, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	post := func(password string) *http.Response {
		form := strings.NewReader("csrf=" + csrfTok + "&email=sergio@artesania.test&password=" + password)
		req := httptest.NewRequest("POST", "/login", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	if resp := post("Incorrecta9!"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", resp.StatusCode)
	}
	if resp := post("Artesano1!"); resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	// the limiter allows 2 attempts; the third must throttle
	if resp := post("Incorrecta9!"); resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
}

func TestLoginBindsSessionCookie(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Sellers: repos.NewSellerRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}
	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	form := strings.NewReader("email=sergio@artesania.test&password=Artesano1!")
	req := httptest.NewRequest("POST", "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("login must issue a sid cookie")
	}

	u, err := authSvc.CurrentSeller(sid)
	if err != nil || u == nil {
		t.Fatalf("sid not bound to seller: %v", err)
	}
	if u.ID != "s-sergio" {
		t.Fatalf("bound to wrong seller: %s", u.ID)
	}

	// logout unbinds
	reqOut := httptest.NewRequest("POST", "/logout", nil)
	reqOut.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := app.Test(reqOut); err != nil {
		t.Fatal(err)
	}
	if u, _ := authSvc.CurrentSeller(sid); u != nil {
		t.Fatal("logout must unbind the session")
	}
}
