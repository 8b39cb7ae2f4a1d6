package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "investwelth/internal/errors"
	"investwelth/internal/services"
)

// PortfolioSnapshotHandler handles portfolio snapshot requests.
type PortfolioSnapshotHandler struct {
	snapshotService services.PortfolioSnapshotServicer
	auditService    services.AuditServicer
}

// NewPortfolioSnapshotHandler creates a new PortfolioSnapshotHandler.
func NewPortfolioSnapshotHandler(snapshotService services.PortfolioSnapshotServicer, auditService services.AuditServicer) *PortfolioSnapshotHandler {
	return &PortfolioSnapshotHandler{snapshotService: snapshotService, auditService: auditService}
}

// ComputeSnapshotsRequest represents the request payload for computing snapshots.
type ComputeSnapshotsRequest struct {
	RecordedAt time.Time `json:"recorded_at" binding:"required"`
}

// ComputeSnapshots handles computing and recording portfolio snapshots.
// @Summary     Compute portfolio snapshots
// @Description Record every investing user's portfolio value for the day of recorded_at (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key  header   string                   true "Pipeline API key"
// @Param       request    body     ComputeSnapshotsRequest  true "Snapshot parameters"
// @Success     200        {object} map[string]int           "Snapshots recorded count"
// @Failure     400        {object} ErrorResponse            "Invalid input"
// @Failure     401        {object} ErrorResponse            "Invalid API key"
// @Failure     503        {object} ErrorResponse            "Pipeline not configured"
// @Router      /pipeline/snapshots [post]
func (h *PortfolioSnapshotHandler) ComputeSnapshots(c *gin.Context) {
	var req ComputeSnapshotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	count, err := h.snapshotService.ComputeAndRecordSnapshots(c.Request.Context(), req.RecordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), 0, services.AuditActionSnapshots, "portfolio_daily", 0, c.ClientIP(),
		map[string]interface{}{"recorded_at": req.RecordedAt, "snapshots_recorded": count})

	c.JSON(http.StatusOK, gin.H{"snapshots_recorded": count})
}
