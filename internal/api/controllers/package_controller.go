package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cholojai/internal/services"
	"cholojai/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
	}
}

func (p *PackageController) ListPackagesHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.packageService.ListPackages(), "Packages fetched successfully")
}

func (p *PackageController) GetPackageHandler(c *gin.Context) {
	slug := c.Param("destination")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	pkg, err := p.packageService.GetPackageBySlug(slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

func (p *PackageController) ListDestinationsHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.packageService.ListDestinations(), "Destinations fetched successfully")
}

func (p *PackageController) BudgetRangesHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.packageService.BudgetRanges(), "Budget ranges fetched successfully")
}
