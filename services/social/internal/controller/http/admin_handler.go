package http

import (
	"errors"
	"net/http"
	"strconv"

	"cinesocial/pkg/logger"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/store"
	"cinesocial/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase       usecase.AdminUseCase
	maintenanceUseCase usecase.MaintenanceUseCase
	logger             *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, maintenanceUseCase usecase.MaintenanceUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase:       adminUseCase,
		maintenanceUseCase: maintenanceUseCase,
		logger:             logger,
	}
}

type ReviewMovieRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected removed_copyright"`
}

type ResolveDMCARequest struct {
	Status          string  `json:"status" binding:"required,oneof=approved rejected"`
	ResponseMessage *string `json:"response_message"`
}

type UserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended banned"`
}

type ReviewModerationRequest struct {
	Action string  `json:"action" binding:"required,oneof=approve reject flag"`
	Notes  *string `json:"notes"`
}

type ReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending resolved rejected"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func actorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetString("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid operator id in token"})
		return 0, false
	}
	return id, true
}

// respondError maps store sentinels onto status codes; anything else is a 500.
func (h *AdminHandler) respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidTransition), errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidStatus), errors.Is(err, store.ErrInvalidRating), errors.Is(err, store.ErrInvalidReaction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func (h *AdminHandler) ListMovies(c *gin.Context) {
	movies := h.adminUseCase.ListMovies(entity.MovieStatus(c.Query("status")))
	c.JSON(http.StatusOK, gin.H{"movies": movies, "count": len(movies)})
}

func (h *AdminHandler) ReviewMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req ReviewMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.adminUseCase.ReviewMovie(c.Request.Context(), actor, id, entity.MovieStatus(req.Status))
	if err != nil {
		h.respondError(c, "review movie", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *AdminHandler) PendingDMCA(c *gin.Context) {
	claims := h.adminUseCase.PendingDMCA()
	c.JSON(http.StatusOK, gin.H{"claims": claims, "count": len(claims)})
}

func (h *AdminHandler) ResolveDMCA(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req ResolveDMCARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, err := h.adminUseCase.ResolveDMCAClaim(c.Request.Context(), actor, id, entity.DMCAStatus(req.Status), req.ResponseMessage)
	if err != nil {
		h.respondError(c, "resolve DMCA claim", err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *AdminHandler) VerifyUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	user, err := h.adminUseCase.VerifyUser(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, "verify user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.adminUseCase.UpdateUserStatus(c.Request.Context(), actor, id, entity.UserStatus(req.Status))
	if err != nil {
		h.respondError(c, "update user status", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ModerationQueue(c *gin.Context) {
	items := h.adminUseCase.ModerationQueue(entity.ModerationStatus(c.Query("status")))
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *AdminHandler) ReviewModerationItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req ReviewModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.adminUseCase.ReviewModerationItem(c.Request.Context(), actor, id, entity.ModerationAction(req.Action), req.Notes)
	if err != nil {
		h.respondError(c, "review moderation item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) UpdateReportStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req ReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.adminUseCase.UpdateReportStatus(c.Request.Context(), actor, id, entity.ReportStatus(req.Status))
	if err != nil {
		h.respondError(c, "update report status", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) SaveSnapshot(c *gin.Context) {
	if err := h.maintenanceUseCase.SaveSnapshot(c.Request.Context()); err != nil {
		if errors.Is(err, usecase.ErrSnapshotsDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to save snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save snapshot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot saved"})
}

// RegisterRoutes mounts the admin API under group, which must already carry
// authentication and the operator role guard.
func (h *AdminHandler) RegisterRoutes(group *gin.RouterGroup) {
	admin := group.Group("/admin")
	{
		admin.GET("/movies", h.ListMovies)
		admin.POST("/movies/:id/review", h.ReviewMovie)
		admin.GET("/dmca/pending", h.PendingDMCA)
		admin.POST("/dmca/:id/resolve", h.ResolveDMCA)
		admin.POST("/users/:id/verify", h.VerifyUser)
		admin.POST("/users/:id/status", h.UpdateUserStatus)
		admin.GET("/moderation", h.ModerationQueue)
		admin.POST("/moderation/:id/review", h.ReviewModerationItem)
		admin.POST("/reports/:id/status", h.UpdateReportStatus)
		admin.POST("/snapshot", h.SaveSnapshot)
	}
}
