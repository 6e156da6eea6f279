package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errors.New(name + " not found")
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid " + name)
	}

	return uint(id), nil
}

func GetProjectID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "project_id")
}

func GetRaiyatID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "raiyat_id")
}

func GetRecordID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "record_id")
}
