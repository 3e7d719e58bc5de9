package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/auth"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/realtime"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	boards service.BoardService
	tasks  service.TaskService
	tokens *auth.TokenService
	hub    *realtime.Hub
	logger *logrus.Logger
}

func NewHandler(
	users service.UserService,
	boards service.BoardService,
	tasks service.TaskService,
	tokens *auth.TokenService,
	hub *realtime.Hub,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:  users,
		boards: boards,
		tasks:  tasks,
		tokens: tokens,
		hub:    hub,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Project Management API Running")
	})
	router.GET("/ws", h.serveWS)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			limited := authGroup.Group("", newIPRateLimiter(5, 10).middleware())
			limited.POST("/register", h.register)
			limited.POST("/login", h.login)
			authGroup.GET("/me", h.requireAuth(), h.me)
		}

		boards := api.Group("/boards", h.requireAuth())
		{
			boards.GET("", h.listBoards)
			boards.POST("", h.createBoard)
			boards.GET("/:boardId", h.getBoard)
			boards.PUT("/:boardId", h.updateBoard)
			boards.DELETE("/:boardId", h.deleteBoard)
			boards.POST("/:boardId/members", h.addBoardMember)
			boards.DELETE("/:boardId/members/:memberId", h.removeBoardMember)
		}

		tasks := api.Group("/tasks", h.requireAuth())
		{
			tasks.GET("", h.listTasks)
			tasks.POST("", h.createTask)
			tasks.PUT("/:taskId", h.updateTask)
			tasks.DELETE("/:taskId", h.deleteTask)
		}

		users := api.Group("/users", h.requireAuth())
		{
			users.GET("/me", h.getProfile)
			users.PUT("/me", h.updateProfile)
			users.DELETE("/me", h.deleteAccount)
			users.GET("/preferences", h.getPreferences)
			users.PUT("/preferences", h.updatePreferences)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// respondError maps service errors onto the HTTP taxonomy. Anything
// unexpected is logged and surfaced as a bare 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type PreferencesResponse struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

type BoardResponse struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	OwnerID   int64          `json:"ownerId"`
	CreatedAt string         `json:"createdAt"`
	Members   []UserResponse `json:"members"`
	Tasks     []TaskResponse `json:"tasks"`
}

type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	BoardID     int64             `json:"boardId"`
	AssigneeID  *int64            `json:"assigneeId"`
	CreatedAt   string            `json:"createdAt"`
}

func userToResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	if !user.CreatedAt.IsZero() {
		resp.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	if !user.UpdatedAt.IsZero() {
		resp.UpdatedAt = user.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func boardToResponse(board domain.Board) BoardResponse {
	resp := BoardResponse{
		ID:        board.ID,
		Title:     board.Title,
		OwnerID:   board.OwnerID,
		CreatedAt: board.CreatedAt.Format(time.RFC3339),
		Members:   make([]UserResponse, len(board.Members)),
		Tasks:     make([]TaskResponse, len(board.Tasks)),
	}
	for i := range board.Members {
		resp.Members[i] = userToResponse(&board.Members[i])
	}
	for i := range board.Tasks {
		resp.Tasks[i] = taskToResponse(board.Tasks[i])
	}
	return resp
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		BoardID:     task.BoardID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}
