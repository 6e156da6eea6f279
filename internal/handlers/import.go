package handlers

import (
	"net/http"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

type ImportRequest struct {
	Records []aggregate.ImportRow `json:"records"`
}

// ImportRecords ingests decoded spreadsheet rows with partial-failure
// semantics: one bad row is reported, not fatal to the batch. Rows missing the
// raiyat name or khesra number are dropped before they reach the reconciler.
func ImportRecords(ctx *gin.Context) {
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

	var req ImportRequest

	if err := ctx.BindJSON(&req); err != nil || req.Records == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य रिकॉर्ड डेटा"})
		return
	}

	rows := make([]aggregate.ImportRow, 0, len(req.Records))

	for _, row := range req.Records {
		if row.RaiyatName == "" || row.KhesraNumber == "" {
			continue
		}
		rows = append(rows, row)
	}

	result, err := aggregate.ImportRecords(db.DB, userID, projectID, rows)

	if err != nil {
		respondAggregateError(ctx, err, "importing records failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, result)
}
