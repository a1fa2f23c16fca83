package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/services"
)

type TagHandler struct {
	db         *gorm.DB
	tagService services.TagService
}

func NewTagHandler(db *gorm.DB, tagService services.TagService) *TagHandler {
	return &TagHandler{db: db, tagService: tagService}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var input services.TagCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.CreateTag(h.db, input)
	if err != nil {
		handleTagError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(h.db)
	if err != nil {
		handleTagError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func handleTagError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateTagName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process tag request"})
	}
}
