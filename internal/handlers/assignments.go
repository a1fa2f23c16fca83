package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/services"
)

type AssignmentHandler struct {
	db                *gorm.DB
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(db *gorm.DB, assignmentService services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{db: db, assignmentService: assignmentService}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var input services.AssignmentCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(h.db, input)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.GetAssignments(h.db)
	if err != nil {
		handleAssignmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage(err, "assignment not found")})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process assignment request"})
	}
}
