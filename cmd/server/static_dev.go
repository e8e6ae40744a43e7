//go:build !embed
// +build !embed

package main

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves the chat widget from the local filesystem
func setupStaticFiles(router *gin.Engine, staticDir string, logger *slog.Logger) {
	if staticDir == "" {
		staticDir = "./cmd/server/web"
	}
	logger.Info("🔧 Using local filesystem for chat widget", "dir", staticDir)

	router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	router.StaticFile("/chat.js", filepath.Join(staticDir, "chat.js"))
	router.StaticFile("/chat.css", filepath.Join(staticDir, "chat.css"))
	router.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}
