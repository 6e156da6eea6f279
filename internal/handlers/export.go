package handlers

import (
	"fmt"
	"net/http"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/export"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

// ExportProject streams the project's records as a CSV attachment named after
// the project.
func ExportProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := aggregate.LoadProject(db.DB, userID, projectID)

	if err != nil {
		respondAggregateError(ctx, err, "exporting project failed")
		return
	}

	csv := export.CSV(project)

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", project.Name+".csv"))
	ctx.Data(http.StatusOK, export.ContentType, []byte(csv))
}
