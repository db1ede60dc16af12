package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateResourceRequest struct {
	ContentType string  `json:"content_type" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url"`
}

type UpdateResourceRequest struct {
	ContentType *string `json:"content_type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url"`
}

func ListResources(ctx *gin.Context) {
	limit, offset := listParams(ctx)

	query := db.DB.Model(&models.Resource{})

	if contentType := ctx.Query("content_type"); contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}

	resources := make([]models.Resource, 0)

	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&resources).Error; err != nil {
		log.Printf("Failed to list resources: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, resources)
}

func CreateResource(ctx *gin.Context) {
	var body CreateResourceRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	resource := models.Resource{
		ContentType: body.ContentType,
		Title:       body.Title,
		Description: body.Description,
		ContentURL:  body.ContentURL,
		AuthorID:    userID,
	}

	if err := db.DB.Create(&resource).Error; err != nil {
		log.Printf("Failed to create resource: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusCreated, resource)
}

func GetResource(ctx *gin.Context) {
	var resource models.Resource

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Resource not found")
		} else {
			log.Printf("Failed to fetch resource: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

func UpdateResource(ctx *gin.Context) {
	var resource models.Resource

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Resource not found")
		} else {
			log.Printf("Failed to fetch resource: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateResourceRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.ContentType != nil && *body.ContentType != "" {
		updates["content_type"] = *body.ContentType
	}
	if body.Title != nil && *body.Title != "" {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.ContentURL != nil {
		updates["content_url"] = *body.ContentURL
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&resource).Updates(updates).Error; err != nil {
		log.Printf("Failed to update resource: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("id = ?", resource.ID).First(&resource).Error; err != nil {
		log.Printf("Failed to refresh resource: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}
