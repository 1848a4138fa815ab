package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// Flash levels drive the styling hooks in the page templates.
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

const (
	flashCookieName   = "solace_flash"
	flashCookieMaxAge = 300
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Message string
	Level   string
}

// setFlash stores the message in a short-lived cookie picked up by the next
// page render.
func setFlash(c *gin.Context, level, message string) {
	v := url.Values{}
	v.Set("level", level)
	v.Set("msg", message)
	c.SetCookie(flashCookieName, v.Encode(), flashCookieMaxAge, "/", "", false, true)
}

// takeFlash pops the pending flash message and expires its cookie.
func takeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	vals, err := url.ParseQuery(raw)
	if err != nil {
		return nil
	}
	msg := vals.Get("msg")
	if msg == "" {
		return nil
	}
	level := vals.Get("level")
	if level == "" {
		level = FlashError
	}
	return &Flash{Message: msg, Level: level}
}
