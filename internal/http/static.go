package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"nifresolver/pkg/logger"
	"nifresolver/pkg/resolver"
)

// registerFallback serves files from dir when they exist and the bootstrap
// page for everything else, so unknown pages still get resolved. Paths naming
// an ontology file get the bootstrap page even when the file is on disk.
func registerFallback(e *echo.Echo, dir string, bootstrap echo.HandlerFunc) {
	var fileServer nethttp.Handler
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			logger.Warn("static dir not found", "module", "http", "dir", dir)
			dir = ""
		} else {
			fileServer = nethttp.FileServer(nethttp.Dir(dir))
		}
	}

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}
		// Ontology files always go through the bootstrap page so the browser
		// checks for a fragment before anything leaves the site.
		if fileServer == nil || strings.Contains(requestPath, resolver.OntologyMarker) {
			return bootstrap(c)
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			cleanPath = "index.html"
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err == nil && !fileInfo.IsDir() {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		return bootstrap(c)
	})
}
