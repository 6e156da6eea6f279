package handlers

import (
	"net/http"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/stats"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

// ProjectStats computes the on-demand statistics projection: whole-project
// totals plus the per-raiyat area distribution. Nothing is cached or stored.
func ProjectStats(ctx *gin.Context) {
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
		respondAggregateError(ctx, err, "computing stats failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"stats":        stats.Summarize(project.LandRecords),
		"distribution": stats.Distribution(project.LandRecords),
	})
}
