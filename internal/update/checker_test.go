package update

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/avinsharma/intervu/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"tag_name": "` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	res, err := c.Check(context.Background(), "v1.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.UpdateAvailable {
		t.Error("expected update to be available")
	}
	if res.LatestVersion != "v1.2.0" {
		t.Errorf("latest = %q, want v1.2.0", res.LatestVersion)
	}
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.1.0", http.StatusOK)

	res, err := c.Check(context.Background(), "v1.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.UpdateAvailable {
		t.Error("expected no update for matching versions")
	}
}

func TestCheckBareVersionGetsVPrefix(t *testing.T) {
	c := newTestChecker(t, "1.3.0", http.StatusOK)

	res, err := c.Check(context.Background(), "1.2.9")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.UpdateAvailable {
		t.Error("expected update for older bare version")
	}
	if res.CurrentVersion != "v1.2.9" {
		t.Errorf("current = %q, want v1.2.9", res.CurrentVersion)
	}
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusOK)

	_, err := c.Check(context.Background(), "(devel)")
	if !errors.Is(err, ErrDevBuild) {
		t.Errorf("err = %v, want ErrDevBuild", err)
	}
}

func TestCheckServerError(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusInternalServerError)

	if _, err := c.Check(context.Background(), "v1.0.0"); err == nil {
		t.Error("expected error on HTTP 500")
	}
}
