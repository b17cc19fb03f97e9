package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satwik073/Priscus-server/internal/logging"
	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/storage"
)

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: bodyIssue(err)})
		return
	}
	if issues := validateStruct(req); issues != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: issues})
		return
	}

	res, err := h.svc.Submit(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.fail(c, "analyze_project", err)
		return
	}

	c.JSON(http.StatusOK, analyzeResp{Success: true, Data: res.Analysis, ProjectID: res.ProjectID})
}

func (h *Handler) generateKanban(c *gin.Context) {
	var req artifactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: bodyIssue(err)})
		return
	}

	out, err := h.svc.GenerateKanban(c.Request.Context(), req.toService())
	if err != nil {
		h.fail(c, "generate_kanban", err)
		return
	}
	c.JSON(http.StatusOK, dataResp[domain.KanbanData]{Success: true, Data: out.Value})
}

func (h *Handler) generateWorkflow(c *gin.Context) {
	var req artifactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: bodyIssue(err)})
		return
	}

	out, err := h.svc.GenerateWorkflow(c.Request.Context(), req.toService())
	if err != nil {
		h.fail(c, "generate_workflow", err)
		return
	}
	c.JSON(http.StatusOK, dataResp[domain.WorkflowData]{Success: true, Data: out.Value})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list_projects", err)
		return
	}
	if items == nil {
		items = []domain.Project{}
	}
	c.JSON(http.StatusOK, dataResp[[]domain.Project]{Success: true, Data: items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_project", err)
		return
	}
	c.JSON(http.StatusOK, dataResp[*domain.Project]{Success: true, Data: p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete_project", err)
		return
	}
	c.JSON(http.StatusOK, messageResp{Success: true, Message: "Project deleted successfully"})
}

func (h *Handler) databaseSchema(c *gin.Context) {
	c.JSON(http.StatusOK, dataResp[domain.SchemaDiagram]{Success: true, Data: sampleSchema()})
}

// fail maps service errors onto HTTP responses.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrAnalysisRequired):
		c.JSON(http.StatusBadRequest, errorResp{Error: "Analysis and projectId are required"})
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid project ID format"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResp{Error: "Project not found"})
	case errors.Is(err, storage.ErrNotConnected):
		logging.NewLogger(c.Request.Context()).LogError(op, err)
		c.JSON(http.StatusServiceUnavailable, errorResp{Error: "Database not connected"})
	default:
		logging.NewLogger(c.Request.Context()).LogError(op, err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Internal server error"})
	}
}
