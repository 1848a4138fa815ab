package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	"github.com/vporoshin/solace/internal/server/http/dto"
	"github.com/vporoshin/solace/internal/server/http/middleware"
)

// Flash texts shown on the journal page.
const (
	msgEntryFieldsMissing = "Category and description are required."
	msgEntryTooLong       = "Category cannot exceed 100 characters and description cannot exceed 1000 characters."
	msgEntrySaved         = "Entry saved successfully."
)

// EntryHandler serves the journal page: the submission form plus the
// current user's past entries.
type EntryHandler struct {
	facade JournalFacade
}

// NewEntryHandler creates EntryHandler instance.
func NewEntryHandler(facade JournalFacade) *EntryHandler {
	return &EntryHandler{facade: facade}
}

// Index handles GET /.
func (h *EntryHandler) Index(c *gin.Context) {
	userID := CurrentUserID(c)

	user, err := h.facade.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// The token outlived its user. Drop it and start over.
			middleware.ClearAuthCookie(c)
			c.Redirect(http.StatusFound, loginPath)
			return
		}
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"Flash": &Flash{Message: msgInternalError, Level: FlashError},
		})
		return
	}

	entries, err := h.facade.Entries(c.Request.Context(), userID)
	if err != nil {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"Flash":    &Flash{Message: msgInternalError, Level: FlashError},
			"Username": user.Username,
		})
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Flash":    takeFlash(c),
		"Username": user.Username,
		"Entries":  entries,
	})
}

// Submit handles POST /. A rejected submission stores nothing; an accepted
// one is saved even when the reply service is down.
func (h *EntryHandler) Submit(c *gin.Context) {
	var form dto.EntryForm
	_ = c.ShouldBind(&form)

	_, err := h.facade.SubmitEntry(c.Request.Context(), CurrentUserID(c), form.Category, form.Description)
	switch {
	case err == nil:
		setFlash(c, FlashSuccess, msgEntrySaved)
	case errors.Is(err, domainErrors.ErrEntryFieldsMissing):
		setFlash(c, FlashError, msgEntryFieldsMissing)
	case errors.Is(err, domainErrors.ErrEntryTooLong):
		setFlash(c, FlashError, msgEntryTooLong)
	default:
		setFlash(c, FlashError, msgInternalError)
	}
	c.Redirect(http.StatusSeeOther, journalPath)
}
