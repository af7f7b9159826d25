package controller

import (
	"net/http"

	"algoprep/internal/assist/service"
	"algoprep/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// AssistController handles the /ai endpoints.
type AssistController struct {
	assistService *service.AssistService
}

// NewAssistController creates a new AssistController.
func NewAssistController(assistService *service.AssistService) *AssistController {
	return &AssistController{assistService: assistService}
}

// RegisterRoutes mounts the assist endpoints on the given group.
func (h *AssistController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/ai/health", h.Health)
	api.POST("/ai/explain", h.Explain)
	api.POST("/ai/hints", h.Hints)
	api.POST("/ai/solution", h.Solution)
}

// Health reports whether the gateway is usable, independent of any
// invocation.
func (h *AssistController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"configured": h.assistService.Configured(),
	})
}

// Explain handles explanation requests.
func (h *AssistController) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title required")
		return
	}

	text, err := h.assistService.Explain(c.Request.Context(), req.Title, req.URL, req.Details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, text)
}

// Hints handles hint requests.
func (h *AssistController) Hints(c *gin.Context) {
	var req HintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title required")
		return
	}

	text, err := h.assistService.Hints(c.Request.Context(), req.Title, req.URL, req.CurrentThought)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, text)
}

// Solution handles solution requests.
func (h *AssistController) Solution(c *gin.Context) {
	var req SolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title and language required")
		return
	}

	text, err := h.assistService.Solution(c.Request.Context(), req.Title, req.URL, req.Language)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, text)
}

// ExplainRequest defines the explain payload.
type ExplainRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Details string `json:"details"`
}

// HintsRequest defines the hints payload.
type HintsRequest struct {
	Title          string `json:"title"`
	URL            string `json:"url"`
	CurrentThought string `json:"currentThought"`
}

// SolutionRequest defines the solution payload.
type SolutionRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Language string `json:"language"`
}
