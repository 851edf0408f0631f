package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/repositories"
	"github.com/chronominerals/minerals-insight/services"
)

// MineralController exposes the record and deposit query surface.
type MineralController struct {
	repo    *repositories.DatasetRepository
	dataset *services.DatasetService
}

// NewMineralController creates a new mineral controller.
func NewMineralController(repo *repositories.DatasetRepository, dataset *services.DatasetService) *MineralController {
	return &MineralController{repo: repo, dataset: dataset}
}

// Search returns mineral records matching the optional mineral and
// country query parameters
func (ctrl *MineralController) Search(c *gin.Context) {
	var filter dto.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"minerals": ctrl.repo.Search(filter),
	})
}

// MineralNames returns the sorted list of unique mineral names
func (ctrl *MineralController) MineralNames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"minerals": ctrl.repo.UniqueMinerals(),
	})
}

// CountryNames returns the sorted list of unique countries
func (ctrl *MineralController) CountryNames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": ctrl.repo.UniqueCountries(),
	})
}

// Deposits returns deposits matching the optional mineral and country
// query parameters
func (ctrl *MineralController) Deposits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"deposits": ctrl.repo.Deposits(c.Query("mineral"), c.Query("country")),
	})
}

// Export returns the full record and deposit snapshot
func (ctrl *MineralController) Export(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"minerals": ctrl.repo.AllRecords(),
		"deposits": ctrl.repo.Deposits("", ""),
	})
}

// Reload rebuilds the dataset from the raw source and reports the new counts
func (ctrl *MineralController) Reload(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.dataset.Load())
}
