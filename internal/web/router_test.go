package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/zenith-academy/intake/internal/db"
)

func TestRouterHealthz(t *testing.T) {
	orig, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(orig) }) //nolint:errcheck
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := db.Init(); err != nil {
		t.Fatalf("db init: %v", err)
	}
	r := Router()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
