package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/vporoshin/solace/internal/server/http/middleware"
)

const (
	journalPath = "/"
	loginPath   = "/login"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// safeNextTarget validates a post-login redirect target. Only targets that
// resolve to the current host over http or https are honored; anything else
// falls back to the journal page.
func safeNextTarget(c *gin.Context, target string) string {
	if target == "" {
		return journalPath
	}

	base := &url.URL{Scheme: "http", Host: c.Request.Host}
	if c.Request.TLS != nil {
		base.Scheme = "https"
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return journalPath
	}
	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return journalPath
	}
	if resolved.Host != c.Request.Host {
		return journalPath
	}
	return resolved.RequestURI()
}
