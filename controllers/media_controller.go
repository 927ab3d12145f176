package controllers

import (
	"errors"

	"foodcourt/entity"
	"foodcourt/pkg/resp"
	"foodcourt/services"

	"github.com/gin-gonic/gin"
)

type MediaController struct{ Svc *services.MediaService }

func NewMediaController(s *services.MediaService) *MediaController {
	return &MediaController{Svc: s}
}

// POST /media/upload (multipart field "image")
func (h *MediaController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "missing image file")
		return
	}

	url, err := h.Svc.Upload(file)
	if err != nil {
		var collab *entity.CollaboratorError
		if errors.As(err, &collab) {
			c.JSON(502, gin.H{"ok": false, "error": collab.Error()})
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"url": url})
}
