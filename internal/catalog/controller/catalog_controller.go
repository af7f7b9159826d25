package controller

import (
	"strconv"

	"algoprep/internal/catalog/service"
	"algoprep/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// Query defaults matching the deployed behavior contract.
const (
	defaultTopic      = "array"
	defaultDifficulty = "medium"
	defaultLimit      = 50
	defaultRatingMin  = 1200
	defaultRatingMax  = 1500
)

// CatalogController handles problem, sheet, and contest HTTP endpoints.
type CatalogController struct {
	catalogService *service.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// RegisterRoutes mounts the catalog endpoints on the given group.
func (h *CatalogController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/dsa/problems", h.DSAProblems)
	api.GET("/dsa/topics", h.DSATopics)
	api.GET("/dsa/difficulties", h.DSADifficulties)
	api.GET("/cp/problems", h.CPProblems)
	api.GET("/cp/topics", h.CPTopics)
	api.GET("/cp/rating-ranges", h.CPRatingRanges)
	api.GET("/contests", h.Contests)
	api.GET("/sheets", h.ListSheets)
	api.GET("/sheets/:key", h.SheetProblems)
}

// DSAProblems handles topic/difficulty problem queries.
func (h *CatalogController) DSAProblems(c *gin.Context) {
	topic := c.DefaultQuery("topic", defaultTopic)
	difficulty := c.DefaultQuery("difficulty", defaultDifficulty)

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	problems, provenance, err := h.catalogService.DSAProblems(c.Request.Context(), topic, difficulty, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithSource(c, problems, provenance)
}

// CPProblems handles rating-range problem queries.
func (h *CatalogController) CPProblems(c *gin.Context) {
	ratingMin, ok := intQuery(c, "ratingMin", defaultRatingMin)
	if !ok {
		return
	}
	ratingMax, ok := intQuery(c, "ratingMax", defaultRatingMax)
	if !ok {
		return
	}
	topic := c.Query("topic")

	problems, provenance, err := h.catalogService.CPProblems(c.Request.Context(), ratingMin, ratingMax, topic)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithSource(c, problems, provenance)
}

// DSATopics serves the static catalog topic list.
func (h *CatalogController) DSATopics(c *gin.Context) {
	response.Success(c, h.catalogService.DSATopics())
}

// DSADifficulties serves the static difficulty list.
func (h *CatalogController) DSADifficulties(c *gin.Context) {
	response.Success(c, h.catalogService.DSADifficulties())
}

// CPTopics serves the static contest-judge tag list.
func (h *CatalogController) CPTopics(c *gin.Context) {
	response.Success(c, h.catalogService.CPTopics())
}

// CPRatingRanges serves the labeled rating bands.
func (h *CatalogController) CPRatingRanges(c *gin.Context) {
	response.Success(c, h.catalogService.CPRatingRanges())
}

// Contests serves upcoming and running contests.
func (h *CatalogController) Contests(c *gin.Context) {
	contests, err := h.catalogService.Contests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contests)
}

// ListSheets serves sheet metadata. The provenance tag is only exposed
// when the bundled fallback served the request.
func (h *CatalogController) ListSheets(c *gin.Context) {
	metas, provenance, err := h.catalogService.ListSheets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if provenance == service.ProvenanceFallback {
		response.SuccessWithSource(c, metas, provenance)
		return
	}
	response.Success(c, metas)
}

// SheetProblems serves the ordered items of one sheet.
func (h *CatalogController) SheetProblems(c *gin.Context) {
	key := c.Param("key")

	items, provenance, err := h.catalogService.SheetProblems(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	if provenance == service.ProvenanceFallback {
		response.SuccessWithSource(c, items, provenance)
		return
	}
	response.Success(c, items)
}

func intQuery(c *gin.Context, name string, fallbackValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallbackValue, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return parsed, true
}
