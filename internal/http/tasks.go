package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	BoardID     int64  `json:"boardId" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	AssigneeID  *int64 `json:"assigneeId"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	// an explicit 0 clears the assignee
	AssigneeID *int64 `json:"assigneeId"`
}

func (h *Handler) listTasks(c *gin.Context) {
	boardID, err := strconv.ParseInt(c.Query("boardId"), 10, 64)
	if err != nil || boardID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boardId"})
		return
	}

	tasks, err := h.tasks.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.authorizeBoardMutation(c, req.BoardID, userID) {
		return
	}

	task, err := h.tasks.Create(
		c.Request.Context(),
		req.BoardID,
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
		req.AssigneeID,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), taskID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.authorizeBoardMutation(c, task.BoardID, userID) {
		return
	}

	update := repository.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID == 0 {
			update.ClearAssignee = true
		} else {
			update.AssigneeID = req.AssigneeID
		}
	}

	updated, err := h.tasks.Update(c.Request.Context(), taskID, update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*updated))
}

func (h *Handler) deleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), taskID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !h.authorizeBoardMutation(c, task.BoardID, userID) {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// authorizeBoardMutation checks the caller may mutate the given board,
// responding 403/404 itself when not.
func (h *Handler) authorizeBoardMutation(c *gin.Context, boardID, userID int64) bool {
	board, err := h.boards.Get(c.Request.Context(), boardID)
	if err != nil {
		h.respondError(c, err)
		return false
	}

	allowed, err := h.boards.CanMutate(c.Request.Context(), board, userID)
	if err != nil {
		h.respondError(c, err)
		return false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return false
	}
	return true
}
