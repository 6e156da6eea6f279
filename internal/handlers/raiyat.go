package handlers

import (
	"net/http"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

type AddRaiyatRequest struct {
	Name string `json:"name"`
}

func AddRaiyat(ctx *gin.Context) {
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

	var req AddRaiyatRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "रैयत नाम आवश्यक है"})
		return
	}

	project, err := aggregate.AddRaiyat(db.DB, userID, projectID, req.Name)

	if err != nil {
		respondAggregateError(ctx, err, "adding raiyat failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func DeleteRaiyat(ctx *gin.Context) {
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

	raiyatID, err := utils.GetRaiyatID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := aggregate.DeleteRaiyat(db.DB, userID, projectID, raiyatID)

	if err != nil {
		respondAggregateError(ctx, err, "deleting raiyat failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}
