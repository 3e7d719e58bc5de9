package service

import (
	"context"
	"strings"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

// BoardService coordinates board level operations and authorization.
type BoardService interface {
	Create(ctx context.Context, ownerID int64, title string) (*domain.Board, error)
	Get(ctx context.Context, id int64) (*domain.Board, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Board, error)
	Update(ctx context.Context, id, userID int64, title string) (*domain.Board, error)
	Delete(ctx context.Context, id, userID int64) error
	AddMember(ctx context.Context, boardID, ownerID, memberID int64) error
	RemoveMember(ctx context.Context, boardID, ownerID, memberID int64) error
	// CanMutate reports whether userID may change the board or its tasks.
	CanMutate(ctx context.Context, board *domain.Board, userID int64) (bool, error)
}

type boardService struct {
	boards repository.BoardRepository
	tasks  repository.TaskRepository
}

func NewBoardService(boards repository.BoardRepository, tasks repository.TaskRepository) BoardService {
	return &boardService{
		boards: boards,
		tasks:  tasks,
	}
}

func (s *boardService) Create(ctx context.Context, ownerID int64, title string) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title is required")
	}

	board := &domain.Board{
		Title:   title,
		OwnerID: ownerID,
	}
	if _, err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) Get(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := s.boards.Get(ctx, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.attach(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) ListForUser(ctx context.Context, userID int64) ([]domain.Board, error) {
	boards, err := s.boards.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range boards {
		if err := s.attach(ctx, &boards[i]); err != nil {
			return nil, err
		}
	}
	return boards, nil
}

func (s *boardService) Update(ctx context.Context, id, userID int64, title string) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title is required")
	}

	board, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.CanMutate(ctx, board, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if err := s.boards.UpdateTitle(ctx, id, title); err != nil {
		return nil, err
	}
	board.Title = title
	return board, nil
}

// Delete removes the board and its tasks. Tasks go first; the two statements
// are not atomic, so a crash in between can leave the board without tasks but
// still present.
func (s *boardService) Delete(ctx context.Context, id, userID int64) error {
	board, err := s.boards.Get(ctx, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return ErrNotFound
		}
		return err
	}
	if board.OwnerID != userID {
		return ErrForbidden
	}

	if err := s.tasks.DeleteByBoard(ctx, id); err != nil {
		return err
	}
	return s.boards.Delete(ctx, id)
}

func (s *boardService) AddMember(ctx context.Context, boardID, ownerID, memberID int64) error {
	board, err := s.boards.Get(ctx, boardID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return ErrNotFound
		}
		return err
	}
	if board.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.boards.AddMember(ctx, boardID, memberID)
}

func (s *boardService) RemoveMember(ctx context.Context, boardID, ownerID, memberID int64) error {
	board, err := s.boards.Get(ctx, boardID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return ErrNotFound
		}
		return err
	}
	if board.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.boards.RemoveMember(ctx, boardID, memberID)
}

func (s *boardService) CanMutate(ctx context.Context, board *domain.Board, userID int64) (bool, error) {
	if board.OwnerID == userID {
		return true, nil
	}
	return s.boards.IsMember(ctx, board.ID, userID)
}

func (s *boardService) attach(ctx context.Context, board *domain.Board) error {
	members, err := s.boards.ListMembers(ctx, board.ID)
	if err != nil {
		return err
	}
	for i := range members {
		members[i].PasswordHash = ""
	}
	board.Members = members

	tasks, err := s.tasks.ListByBoard(ctx, board.ID)
	if err != nil {
		return err
	}
	board.Tasks = tasks
	return nil
}
