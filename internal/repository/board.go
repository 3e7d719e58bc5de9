package repository

import (
	"context"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
)

// BoardRepository exposes persistence operations for Board aggregates.
type BoardRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, board *domain.Board) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Board, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Board, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, boardID, userID int64) error
	RemoveMember(ctx context.Context, boardID, userID int64) error
	ListMembers(ctx context.Context, boardID int64) ([]domain.User, error)
	IsMember(ctx context.Context, boardID, userID int64) (bool, error)
}
