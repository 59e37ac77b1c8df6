package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodly-be/internal/middleware"
	"moodly-be/internal/models"
	"moodly-be/internal/service"
)

type DiaryController struct {
	diaryService service.DiaryService
}

func NewDiaryController(diaryService service.DiaryService) *DiaryController {
	return &DiaryController{
		diaryService: diaryService,
	}
}

// currentUserID reads the authenticated identity set by the auth
// middleware. A missing id means the route was wired without the gate.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "authentication required",
		})
		return 0, false
	}
	return value.(int64), true
}

func entryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid entry id",
		})
		return 0, false
	}
	return id, true
}

// List handles GET /api/diary
func (dc *DiaryController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := dc.diaryService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/diary
func (dc *DiaryController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.DiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "conteudo, humor and data_entrada are required",
		})
		return
	}

	response, err := dc.diaryService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Update handles PUT /api/diary/:id
func (dc *DiaryController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req models.DiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "conteudo, humor and data_entrada are required",
		})
		return
	}

	if err := dc.diaryService.Update(userID, entryID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "entry updated successfully",
	})
}

// Delete handles DELETE /api/diary/:id
func (dc *DiaryController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	if err := dc.diaryService.Delete(userID, entryID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "entry deleted successfully",
	})
}
