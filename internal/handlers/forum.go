package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/VersaceXcodes/eco5/db"
	"github.com/VersaceXcodes/eco5/internal/models"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/VersaceXcodes/eco5/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateThreadRequest struct {
	ThreadTitle string     `json:"thread_title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	CreatedAt   *time.Time `json:"created_at"`
}

type UpdateThreadRequest struct {
	ThreadTitle *string `json:"thread_title"`
	Content     *string `json:"content"`
}

func listParams(ctx *gin.Context) (int, int) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

func ListForumThreads(ctx *gin.Context) {
	limit, offset := listParams(ctx)

	query := db.DB.Model(&models.ForumThread{})

	if userID := ctx.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	threads := make([]models.ForumThread, 0)

	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&threads).Error; err != nil {
		log.Printf("Failed to list forum threads: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, threads)
}

func CreateForumThread(ctx *gin.Context) {
	var body CreateThreadRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	thread := models.ForumThread{
		UserID:      userID,
		ThreadTitle: body.ThreadTitle,
		Content:     body.Content,
	}

	if body.CreatedAt != nil {
		thread.CreatedAt = *body.CreatedAt
	}

	if err := db.DB.Create(&thread).Error; err != nil {
		log.Printf("Failed to create forum thread: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusCreated, thread)
}

func GetForumThread(ctx *gin.Context) {
	var thread models.ForumThread

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Forum thread not found")
		} else {
			log.Printf("Failed to fetch forum thread: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, thread)
}

func UpdateForumThread(ctx *gin.Context) {
	var thread models.ForumThread

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "Forum thread not found")
		} else {
			log.Printf("Failed to fetch forum thread: %v", err)
			respondInternalError(ctx)
		}
		return
	}

	var body UpdateThreadRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if body.ThreadTitle != nil && *body.ThreadTitle != "" {
		updates["thread_title"] = *body.ThreadTitle
	}
	if body.Content != nil && *body.Content != "" {
		updates["content"] = *body.Content
	}

	if len(updates) == 0 {
		respondError(ctx, http.StatusBadRequest, types.CodeNoUpdateFields, "No valid fields to update")
		return
	}

	if err := db.DB.Model(&thread).Updates(updates).Error; err != nil {
		log.Printf("Failed to update forum thread: %v", err)
		respondInternalError(ctx)
		return
	}

	if err := db.DB.Where("id = ?", thread.ID).First(&thread).Error; err != nil {
		log.Printf("Failed to refresh forum thread: %v", err)
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, thread)
}
