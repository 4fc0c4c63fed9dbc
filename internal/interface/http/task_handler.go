package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskify/taskify-api/internal/application"
	"github.com/taskify/taskify-api/internal/domain/entity"
	"github.com/taskify/taskify-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// No binding tags here: every structural rule on tasks carries a business
// message owned by the service layer.
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// updateTaskRequest uses pointers so an absent field and an explicitly
// empty one stay distinguishable, which the merge semantics depend on.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func taskPayload(t *entity.Task) gin.H {
	return gin.H{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"user_id":     t.UserID,
		"completed":   t.IsCompleted(),
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func taskListPayload(tasks []*entity.Task) []gin.H {
	out := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskPayload(t))
	}
	return out
}

func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.CreateTask(c.Request.Context(), application.CreateTaskInput{
		Title:       req.Title,
		UserID:      uid,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		domainError(c, h.Logger, err)
		return
	}
	ok(c, http.StatusCreated, taskPayload(t), "task created", nil)
}

// List handles GET /tasks with an optional ?status= filter.
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	tasks, err := h.Svc.GetTasks(c.Request.Context(), application.GetTasksInput{
		UserID: uid,
		Status: c.Query("status"),
	})
	if err != nil {
		domainError(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, taskListPayload(tasks), "tasks", map[string]any{"count": len(tasks)})
}

// Filter handles GET /tasks/filter where ?status= is mandatory.
func (h *TaskHandler) Filter(c *gin.Context) {
	uid := c.GetString("userID")
	tasks, err := h.Svc.FilterTasksByStatus(c.Request.Context(), application.FilterTasksInput{
		UserID: uid,
		Status: c.Query("status"),
	})
	if err != nil {
		domainError(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, taskListPayload(tasks), "tasks", map[string]any{"count": len(tasks)})
}

func (h *TaskHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.UpdateTask(c.Request.Context(), application.UpdateTaskInput{
		ID:          c.Param("id"),
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		domainError(c, h.Logger, err)
		return
	}
	ok(c, http.StatusOK, taskPayload(t), "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	deleted, err := h.Svc.DeleteTask(c.Request.Context(), application.DeleteTaskInput{
		ID:     c.Param("id"),
		UserID: uid,
	})
	if err != nil {
		domainError(c, h.Logger, err)
		return
	}
	ok[any](c, http.StatusOK, map[string]any{"deleted": deleted}, "task deleted", nil)
}
