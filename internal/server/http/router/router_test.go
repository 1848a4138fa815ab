package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vporoshin/solace/internal/server/http/handlers"
	testhelpers "github.com/vporoshin/solace/internal/test"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.JournalFacadeStub{}, testhelpers.HealthCheckerStub{}, logger)
}

func postForm(engine *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestEngine()

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/register", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register page, got %d", resp.Code)
	}

	resp = postForm(engine, "/register", url.Values{"username": {"user"}, "password": {"password"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303 for register, got %d", resp.Code)
	}

	resp = postForm(engine, "/login", url.Values{"username": {"user"}, "password": {"password"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303 for login, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("expected healthy response, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestSetupProtectsJournal(t *testing.T) {
	engine := newTestEngine()

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusFound {
		t.Fatalf("expected anonymous request to be redirected, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); !strings.HasPrefix(got, "/login?next=") {
		t.Fatalf("expected login redirect with next, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for journal, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "alcohol") {
		t.Fatalf("expected entries in journal body, got:\n%s", resp.Body.String())
	}
}

func TestSetupSubmitAndLogout(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"category": {"alcohol"}, "description": {"a rough week"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303 for submit, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302 for logout, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/login" {
		t.Fatalf("expected redirect to login, got %q", got)
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if got := resp.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip response, got %q", got)
	}
}

var _ handlers.JournalFacade = (*testhelpers.JournalFacadeStub)(nil)
var _ handlers.HealthChecker = (*testhelpers.HealthCheckerStub)(nil)
