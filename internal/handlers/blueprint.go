package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/onetool/server/internal/services"
)

type BlueprintHandler struct {
	blueprintService services.BlueprintService
}

func NewBlueprintHandler(blueprintService services.BlueprintService) *BlueprintHandler {
	return &BlueprintHandler{blueprintService: blueprintService}
}

// List returns the catalog; an optional ?keyword= narrows by name.
func (bh *BlueprintHandler) List(c *gin.Context) {
	keyword := c.Query("keyword")
	var err error
	var blueprints any
	if keyword != "" {
		blueprints, err = bh.blueprintService.SearchBlueprints(c.Request.Context(), keyword)
	} else {
		blueprints, err = bh.blueprintService.ListBlueprints(c.Request.Context())
	}
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, blueprints)
}
