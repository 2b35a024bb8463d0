package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/db"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

// testInstant pins "today" to 2026-06-15 for every handler test.
var testInstant = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}

	handler, err := NewHandler(HandlerConfig{
		Database:  database,
		Secret:    "test-secret-key",
		Location:  time.UTC,
		Logger:    log.New(io.Discard, "", 0),
		Clock:     services.FixedClock{Instant: testInstant},
		CacheDir:  t.TempDir(),
		UploadDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	t.Cleanup(func() {
		handler.sessions.CloseAll()
		_ = sqlDB.Close()
	})
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, cookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie not set")
	return ""
}

// registerUser signs up a fresh account and returns its auth cookie.
func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerInput{
		Name:     "Test User",
		Email:    email,
		Password: "Str0ngPass",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", response.StatusCode, http.StatusCreated)
	}
	cookie := authCookieFrom(t, response)
	response.Body.Close()
	return cookie
}

// waitForListLength polls a list endpoint until the echoed snapshot has
// landed in the session.
func waitForListLength(t *testing.T, app *fiber.App, cookie string, path string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		response := doJSON(t, app, http.MethodGet, path, cookie, nil)
		var items []json.RawMessage
		decodeBody(t, response, &items)
		if len(items) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s to have %d items", path, want)
}
