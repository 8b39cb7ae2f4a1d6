package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investwelth/internal/services"
)

// PortfolioHandler handles requests about the current user's portfolio.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetPortfolio returns the portfolio summary.
// @Summary     Portfolio summary
// @Description Totals and per-investment values of the user's portfolio
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioSummary "Portfolio"
// @Failure     401 {object} ErrorResponse             "Unauthorized"
// @Failure     404 {object} ErrorResponse             "No investments"
// @Failure     500 {object} ErrorResponse             "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	summary, err := h.portfolioService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPerformance returns the portfolio value series.
// @Summary     Portfolio performance
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       period   query    string false "1M, 3M, 6M, 1Y, 3Y or MAX (default 1M)"
// @Param       interval query    string false "daily, monthly or yearly (default daily)"
// @Success     200 {object} services.PortfolioPerformance "Value series"
// @Failure     400 {object} ErrorResponse                 "Invalid input"
// @Failure     401 {object} ErrorResponse                 "Unauthorized"
// @Router      /portfolio/performance [get]
func (h *PortfolioHandler) GetPerformance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	period, interval, err := bindRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	perf, err := h.portfolioService.GetPerformance(c.Request.Context(), userID, period, interval)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// GetSectorAllocation returns the portfolio value by sector.
// @Summary     Portfolio sector allocation
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SectorAllocation "Sector allocation"
// @Failure     401 {object} ErrorResponse             "Unauthorized"
// @Router      /portfolio/sectors [get]
func (h *PortfolioHandler) GetSectorAllocation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	alloc, err := h.portfolioService.GetSectorAllocation(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, alloc)
}

// GetHealth returns the portfolio health scores.
// @Summary     Portfolio health
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioHealth "Health scores"
// @Failure     401 {object} ErrorResponse            "Unauthorized"
// @Router      /portfolio/health [get]
func (h *PortfolioHandler) GetHealth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	health, err := h.portfolioService.GetHealth(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}
