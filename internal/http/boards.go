package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type boardRequest struct {
	Title string `json:"title" binding:"required"`
}

type addMemberRequest struct {
	MemberID int64 `json:"memberId" binding:"required"`
}

func (h *Handler) listBoards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	boards, err := h.boards.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]BoardResponse, len(boards))
	for i := range boards {
		resp[i] = boardToResponse(boards[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boards.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, boardToResponse(*board))
}

func (h *Handler) getBoard(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	board, err := h.boards.Get(c.Request.Context(), boardID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardToResponse(*board))
}

func (h *Handler) updateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boards.Update(c.Request.Context(), boardID, userID, req.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardToResponse(*board))
}

func (h *Handler) deleteBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	if err := h.boards.Delete(c.Request.Context(), boardID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) addBoardMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.boards.AddMember(c.Request.Context(), boardID, userID, req.MemberID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member added"})
}

func (h *Handler) removeBoardMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}

	if err := h.boards.RemoveMember(c.Request.Context(), boardID, userID, memberID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}

// pathID parses a positive numeric path parameter, responding 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
