package serve

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stanza/internal/domain/config"
)

func TestHandleFileLookup(t *testing.T) {
	pub := t.TempDir()
	write := func(rel, body string) {
		t.Helper()
		full := filepath.Join(pub, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
	write("index.html", "home")
	write("2008/11/05/hello.html", "hello post")
	write("about/index.html", "about page")
	write("feed.xml", "<feed/>")

	cfg := config.Default()
	cfg.Build.PublicDir = pub
	s := New(cfg, filepath.Join(t.TempDir(), "index.db"))
	defer s.Close()

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		s.handleFile(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home", rec.Body.String())

	// extensionless URL finds the .html page
	rec = get("/2008/11/05/hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello post", rec.Body.String())

	// the explicit .html path still works
	rec = get("/2008/11/05/hello.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello post", rec.Body.String())

	// a directory resolves through its index.html
	rec = get("/about/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "about page", rec.Body.String())

	rec = get("/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<feed/>", rec.Body.String())

	rec = get("/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleFileCustomNotFoundPage(t *testing.T) {
	pub := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pub, "404.html"), []byte("<h1>lost</h1>"), 0o644))

	cfg := config.Default()
	cfg.Build.PublicDir = pub
	s := New(cfg, filepath.Join(t.TempDir(), "index.db"))
	defer s.Close()

	rec := httptest.NewRecorder()
	s.handleFile(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<h1>lost</h1>", rec.Body.String())
}

func TestCloseWithoutWatcher(t *testing.T) {
	s := New(config.Default(), filepath.Join(t.TempDir(), "index.db"))
	assert.NoError(t, s.Close())
}
