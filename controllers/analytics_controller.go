package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chronominerals/minerals-insight/services"
)

const defaultTopProducersLimit = 10

// AnalyticsController exposes the derived chart and stats data.
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsController creates a new analytics controller.
func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// ProductionByCountry returns per-country production totals for one mineral
func (ctrl *AnalyticsController) ProductionByCountry(c *gin.Context) {
	mineral := c.Param("mineral")
	c.JSON(http.StatusOK, gin.H{
		"mineral":    mineral,
		"production": ctrl.analytics.ProductionByCountry(mineral),
	})
}

// MarketShareByCountry returns the grouped totals behind the market
// share chart; the chart layer derives the percentages
func (ctrl *AnalyticsController) MarketShareByCountry(c *gin.Context) {
	mineral := c.Param("mineral")
	c.JSON(http.StatusOK, gin.H{
		"mineral": mineral,
		"shares":  ctrl.analytics.MarketShareByCountry(mineral),
	})
}

// AveragePrices returns the average price per mineral
func (ctrl *AnalyticsController) AveragePrices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prices": ctrl.analytics.AveragePriceByMineral(),
	})
}

// TopProducers returns the highest-producing countries across all minerals
func (ctrl *AnalyticsController) TopProducers(c *gin.Context) {
	limit := defaultTopProducersLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"producers": ctrl.analytics.TopProducers(limit),
	})
}

// ReservesComparison returns reserves per mineral for the requested
// comma-separated countries
func (ctrl *AnalyticsController) ReservesComparison(c *gin.Context) {
	raw := c.Query("countries")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "countries query parameter is required"})
		return
	}

	countries := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			countries = append(countries, trimmed)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reserves": ctrl.analytics.ReservesComparison(countries),
	})
}

// Summary returns the dashboard-level aggregates
func (ctrl *AnalyticsController) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.analytics.SummaryStatistics())
}

// Dashboard returns the headline record, country and deposit counts
func (ctrl *AnalyticsController) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.analytics.DashboardStats())
}

// Countries returns the country directory with per-country counts
func (ctrl *AnalyticsController) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": ctrl.analytics.CountryOverviews(),
	})
}

// CountryProfile returns the aggregated profile for one country
func (ctrl *AnalyticsController) CountryProfile(c *gin.Context) {
	name := c.Param("name")
	profile, found := ctrl.analytics.CountryProfile(name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data found for " + name})
		return
	}
	c.JSON(http.StatusOK, profile)
}
