//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webAssets embed.FS

// setupStaticFiles serves the chat widget compiled into the binary
func setupStaticFiles(router *gin.Engine, _ string, logger *slog.Logger) {
	logger.Info("📦 Using embedded chat widget")

	webFS, err := fs.Sub(webAssets, "web")
	if err != nil {
		logger.Error("Failed to open embedded assets", "error", err)
		os.Exit(1)
	}

	router.StaticFileFS("/", "index.html", http.FS(webFS))
	router.StaticFileFS("/chat.js", "chat.js", http.FS(webFS))
	router.StaticFileFS("/chat.css", "chat.css", http.FS(webFS))
	router.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}
