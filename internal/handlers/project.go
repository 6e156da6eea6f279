package handlers

import (
	"net/http"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type RenameProjectRequest struct {
	Name string `json:"name"`
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "प्रोजेक्ट नाम आवश्यक है"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := aggregate.CreateProject(db.DB, userID, req.Name)

	if err != nil {
		respondAggregateError(ctx, err, "creating project failed")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"project": project})
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := aggregate.ListProjects(db.DB, userID)

	if err != nil {
		respondAggregateError(ctx, err, "listing projects failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"projects": projects})
}

func RenameProject(ctx *gin.Context) {
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

	var req RenameProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "प्रोजेक्ट नाम आवश्यक है"})
		return
	}

	project, err := aggregate.RenameProject(db.DB, userID, projectID, req.Name)

	if err != nil {
		respondAggregateError(ctx, err, "renaming project failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func DeleteProject(ctx *gin.Context) {
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

	if err := aggregate.DeleteProject(db.DB, userID, projectID); err != nil {
		respondAggregateError(ctx, err, "deleting project failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "प्रोजेक्ट डिलीट किया गया"})
}
