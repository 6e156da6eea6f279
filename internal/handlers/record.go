package handlers

import (
	"net/http"
	"strconv"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
)

// CreateRecordRequest mirrors the record form. RaiyatName carries the selected
// raiyat's id, a historical quirk of the form field name.
type CreateRecordRequest struct {
	RaiyatName      string `json:"raiyatName"`
	KhesraNumber    string `json:"khesraNumber"`
	JamabandiNumber string `json:"jamabandiNumber"`
	KhataNumber     string `json:"khataNumber"`
	Rakwa           string `json:"rakwa"`
	Uttar           string `json:"uttar"`
	Dakshin         string `json:"dakshin"`
	Purab           string `json:"purab"`
	Paschim         string `json:"paschim"`
	Remarks         string `json:"remarks"`
}

// UpdateRecordRequest is a partial patch: absent fields stay untouched,
// present empty strings clear the stored value.
type UpdateRecordRequest struct {
	RaiyatID        *uint   `json:"raiyatId"`
	KhesraNumber    *string `json:"khesraNumber"`
	JamabandiNumber *string `json:"jamabandiNumber"`
	KhataNumber     *string `json:"khataNumber"`
	Rakwa           *string `json:"rakwa"`
	Uttar           *string `json:"uttar"`
	Dakshin         *string `json:"dakshin"`
	Purab           *string `json:"purab"`
	Paschim         *string `json:"paschim"`
	Remarks         *string `json:"remarks"`
}

func CreateRecord(ctx *gin.Context) {
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

	var req CreateRecordRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "रैयत नाम और खेसरा नंबर आवश्यक हैं"})
		return
	}

	if req.RaiyatName == "" || req.KhesraNumber == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "रैयत नाम और खेसरा नंबर आवश्यक हैं"})
		return
	}

	raiyatID, err := strconv.ParseUint(req.RaiyatName, 10, 32)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "रैयत नहीं मिला"})
		return
	}

	project, err := aggregate.CreateRecord(db.DB, userID, projectID, aggregate.CreateRecordInput{
		RaiyatID:        uint(raiyatID),
		KhesraNumber:    req.KhesraNumber,
		JamabandiNumber: req.JamabandiNumber,
		KhataNumber:     req.KhataNumber,
		Rakwa:           req.Rakwa,
		Uttar:           req.Uttar,
		Dakshin:         req.Dakshin,
		Purab:           req.Purab,
		Paschim:         req.Paschim,
		Remarks:         req.Remarks,
	})

	if err != nil {
		respondAggregateError(ctx, err, "creating record failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func UpdateRecord(ctx *gin.Context) {
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

	recordID, err := utils.GetRecordID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateRecordRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य अनुरोध"})
		return
	}

	project, err := aggregate.UpdateRecord(db.DB, userID, projectID, recordID, aggregate.UpdateRecordInput{
		RaiyatID:        req.RaiyatID,
		KhesraNumber:    req.KhesraNumber,
		JamabandiNumber: req.JamabandiNumber,
		KhataNumber:     req.KhataNumber,
		Rakwa:           req.Rakwa,
		Uttar:           req.Uttar,
		Dakshin:         req.Dakshin,
		Purab:           req.Purab,
		Paschim:         req.Paschim,
		Remarks:         req.Remarks,
	})

	if err != nil {
		respondAggregateError(ctx, err, "updating record failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func DeleteRecord(ctx *gin.Context) {
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

	recordID, err := utils.GetRecordID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := aggregate.DeleteRecord(db.DB, userID, projectID, recordID)

	if err != nil {
		respondAggregateError(ctx, err, "deleting record failed")
		return
	}

	BroadcastRefresh(projectID)
	ctx.JSON(http.StatusOK, gin.H{"project": project})
}
