package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investwelth/internal/services"
)

// FundHandler handles mutual fund requests.
type FundHandler struct {
	fundService services.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// ListFunds returns all funds.
// @Summary     List funds
// @Description Get every mutual fund ordered by name
// @Tags        funds
// @Produce     json
// @Success     200 {array}  models.MutualFund "Funds"
// @Failure     500 {object} ErrorResponse     "Server error"
// @Router      /funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	funds, err := h.fundService.ListFunds(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, funds)
}

// GetFund returns a fund with its allocations.
// @Summary     Get fund details
// @Description Get a fund with its sector, stock and market-cap allocations
// @Tags        funds
// @Produce     json
// @Param       id  path     int true "Fund ID"
// @Success     200 {object} services.FundDetail "Fund details"
// @Failure     400 {object} ErrorResponse       "Invalid fund ID"
// @Failure     404 {object} ErrorResponse       "Fund not found"
// @Failure     500 {object} ErrorResponse       "Server error"
// @Router      /funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	detail, err := h.fundService.GetFundDetail(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetFundSectors returns a fund's sector allocation.
// @Summary     Get fund sectors
// @Tags        funds
// @Produce     json
// @Param       id  path     int true "Fund ID"
// @Success     200 {array}  services.SectorWeight "Sector allocation"
// @Failure     400 {object} ErrorResponse         "Invalid fund ID"
// @Failure     404 {object} ErrorResponse         "Fund not found"
// @Router      /funds/{id}/sectors [get]
func (h *FundHandler) GetFundSectors(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	sectors, err := h.fundService.GetFundSectors(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetFundStocks returns a fund's stock holdings.
// @Summary     Get fund stocks
// @Tags        funds
// @Produce     json
// @Param       id  path     int true "Fund ID"
// @Success     200 {array}  services.StockWeight "Stock holdings"
// @Failure     400 {object} ErrorResponse        "Invalid fund ID"
// @Failure     404 {object} ErrorResponse        "Fund not found"
// @Router      /funds/{id}/stocks [get]
func (h *FundHandler) GetFundStocks(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	stocks, err := h.fundService.GetFundStocks(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// GetFundPerformance returns a fund's NAV series.
// @Summary     Get fund performance
// @Description Get the NAV history of a fund over a period
// @Tags        funds
// @Produce     json
// @Param       id       path     int    true  "Fund ID"
// @Param       period   query    string false "1M, 3M, 6M, 1Y, 3Y or MAX (default 1M)"
// @Param       interval query    string false "daily, monthly or yearly (default daily)"
// @Success     200 {object} services.FundPerformance "NAV series"
// @Failure     400 {object} ErrorResponse            "Invalid input"
// @Failure     404 {object} ErrorResponse            "Fund not found"
// @Failure     500 {object} ErrorResponse            "Server error"
// @Router      /funds/{id}/performance [get]
func (h *FundHandler) GetFundPerformance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	period, interval, err := bindRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	perf, err := h.fundService.GetFundPerformance(c.Request.Context(), id, period, interval)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// CompareFunds compares two funds.
// @Summary     Compare funds
// @Description Compare two funds: metadata, one year of NAV history, stock overlap and sectors
// @Tags        funds
// @Produce     json
// @Param       id        path     int true "Fund ID"
// @Param       compareId path     int true "Fund ID to compare with"
// @Success     200 {object} services.FundComparison "Comparison"
// @Failure     400 {object} ErrorResponse           "Invalid input"
// @Failure     404 {object} ErrorResponse           "Fund not found"
// @Router      /funds/{id}/compare/{compareId} [get]
func (h *FundHandler) CompareFunds(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	compareID, err := parsePathID(c, "compareId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	cmp, err := h.fundService.CompareFunds(c.Request.Context(), id, compareID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// GetFundOverlap returns the stocks two funds share.
// @Summary     Fund overlap
// @Tags        funds
// @Produce     json
// @Param       fund1 query    int true "First fund ID"
// @Param       fund2 query    int true "Second fund ID"
// @Success     200 {object} services.FundOverlapResult "Overlap"
// @Failure     400 {object} ErrorResponse              "Invalid input"
// @Failure     404 {object} ErrorResponse              "Fund not found"
// @Router      /funds/overlap [get]
func (h *FundHandler) GetFundOverlap(c *gin.Context) {
	fund1, err := parseQueryID(c, "fund1")
	if err != nil {
		respondWithError(c, err)
		return
	}
	fund2, err := parseQueryID(c, "fund2")
	if err != nil {
		respondWithError(c, err)
		return
	}
	overlap, err := h.fundService.GetFundOverlap(c.Request.Context(), fund1, fund2)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overlap)
}
