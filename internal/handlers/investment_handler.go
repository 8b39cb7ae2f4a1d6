package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "investwelth/internal/errors"
	"investwelth/internal/pagination"
	"investwelth/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// GetSummary returns platform-wide investment totals.
// @Summary     Investment summary
// @Description Counts and totals across all users and funds
// @Tags        investments
// @Produce     json
// @Success     200 {object} services.InvestmentSummary "Summary"
// @Failure     500 {object} ErrorResponse              "Server error"
// @Router      /investments/summary [get]
func (h *InvestmentHandler) GetSummary(c *gin.Context) {
	summary, err := h.investmentService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetInvestments returns the user's investments.
// @Summary     List investments
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  services.InvestmentView "Investments"
// @Failure     401 {object} ErrorResponse           "Unauthorized"
// @Failure     500 {object} ErrorResponse           "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	investments, err := h.investmentService.GetUserInvestments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, investments)
}

// GetTransactions pages through the user's investments, newest first.
// @Summary     Investment transactions
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.InvestmentView] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *InvestmentHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	result, err := h.investmentService.GetInvestmentHistory(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
