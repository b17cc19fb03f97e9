package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/analyze-project", h.analyze)
	rg.POST("/generate-kanban", h.generateKanban)
	rg.POST("/generate-workflow", h.generateWorkflow)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.DELETE("/projects/:id", h.delete)
	rg.GET("/database-schema", h.databaseSchema)
}
