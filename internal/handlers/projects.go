package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/services"
)

type ProjectHandler struct {
	db             *gorm.DB
	projectService services.ProjectService
}

func NewProjectHandler(db *gorm.DB, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{db: db, projectService: projectService}
}

// CreateProject accepts a whole project shape in one request: the project
// plus nested tasks with tag and user references.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input services.ProjectCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateProjectWithTasks(h.db, input)
	if err != nil {
		handleProjectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	pageSize := c.DefaultQuery("pageSize", "50")

	projects, total, err := h.projectService.GetProjectsPaginated(h.db, page, pageSize)
	if err != nil {
		handleProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    total,
	})
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(h.db, id)
	if err != nil {
		handleProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.ProjectUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(h.db, id, input)
	if err != nil {
		handleProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject responds with the deleted project's prior state including
// the cascaded task tree.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.DeleteProject(h.db, id)
	if err != nil {
		handleProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage(err, "project not found")})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process project request"})
	}
}
