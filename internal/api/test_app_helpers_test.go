package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aajkakhana/internal/db"
	"github.com/terraincognita07/aajkakhana/internal/i18n"
	"github.com/terraincognita07/aajkakhana/internal/metrics"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

// Wednesday 2024-01-03 08:30 at +5:30: day 3 of the rotation, breakfast.
var testWednesdayMorning = time.Date(2024, time.January, 3, 3, 0, 0, 0, time.UTC)

// Sunday 2024-01-07 19:00 at +5:30: day 7, dinner slot without a dinner.
var testSundayEvening = time.Date(2024, time.January, 7, 13, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T, now time.Time) *fiber.App {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	templatesDir := filepath.Join(filepath.Dir(filepath.Dir(testFile)), "templates")

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "aajkakhana-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	i18nManager, err := i18n.NewBundledManager("hi")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	cycle, err := services.LoadMenuCycle("")
	if err != nil {
		t.Fatalf("load menu: %v", err)
	}

	collector := metrics.NewCollector()
	schedule := services.NewSchedule(func() time.Time { return now }, services.MenuEpoch(time.UTC))
	refresher := services.NewRefreshService(schedule, cycle, time.Minute, collector)
	settings := services.NewSettingsService(db.NewPreferenceRepository(database), i18nManager.DefaultLanguage(), collector)

	handler, err := NewHandler(Dependencies{
		Refresher:    refresher,
		Cycle:        cycle,
		Settings:     settings,
		I18n:         i18nManager,
		TemplatesDir: templatesDir,
		Metrics:      collector.Handler(),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.PreferencesMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) (*http.Response, string) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.Method, request.URL.Path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", request.Method, request.URL.Path, expectedStatus, response.StatusCode, body)
	}
	return response, string(body)
}

func getPage(t *testing.T, app *fiber.App, path string, expectedStatus int) (*http.Response, string) {
	t.Helper()
	return doRequest(t, app, httptest.NewRequest(http.MethodGet, path, nil), expectedStatus)
}

func getJSON(t *testing.T, app *fiber.App, path string, expectedStatus int, target any) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept", "application/json")
	_, body := doRequest(t, app, request, expectedStatus)
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, body)
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, expectedStatus int) (*http.Response, string) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, request, expectedStatus)
}

func assertContainsAll(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected body to contain %q, got:\n%s", fragment, body)
		}
	}
}
