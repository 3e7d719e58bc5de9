package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

const (
	createBoardsTable = `
CREATE TABLE IF NOT EXISTS boards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	owner_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);
`
	createBoardMembersTable = `
CREATE TABLE IF NOT EXISTS board_members (
	board_id INTEGER NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (board_id, user_id)
);
`
)

type BoardRepository struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) repository.BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBoardsTable); err != nil {
		return fmt.Errorf("create boards table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createBoardMembersTable); err != nil {
		return fmt.Errorf("create board members table: %w", err)
	}
	return nil
}

func (r *BoardRepository) Create(ctx context.Context, board *domain.Board) (int64, error) {
	board.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO boards (title, owner_id, created_at)
VALUES (?, ?, ?)`,
		board.Title,
		board.OwnerID,
		board.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert board: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("board last insert id: %w", err)
	}
	board.ID = id
	return id, nil
}

func (r *BoardRepository) Get(ctx context.Context, id int64) (*domain.Board, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, owner_id, created_at
FROM boards
WHERE id = ?`,
		id,
	)

	var board domain.Board
	if err := row.Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("board not found")
		}
		return nil, fmt.Errorf("scan board: %w", err)
	}
	return &board, nil
}

func (r *BoardRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Board, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT b.id, b.title, b.owner_id, b.created_at
FROM boards b
LEFT JOIN board_members m ON m.board_id = b.id
WHERE b.owner_id = ? OR m.user_id = ?
ORDER BY b.created_at ASC, b.id ASC`,
		userID,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}
	return boards, nil
}

func (r *BoardRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE boards SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("update board: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update board rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("board not found")
	}
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete board rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("board not found")
	}
	return nil
}

func (r *BoardRepository) AddMember(ctx context.Context, boardID, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO board_members (board_id, user_id)
VALUES (?, ?)`,
		boardID,
		userID,
	); err != nil {
		return fmt.Errorf("insert board member: %w", err)
	}
	return nil
}

func (r *BoardRepository) RemoveMember(ctx context.Context, boardID, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `
DELETE FROM board_members
WHERE board_id = ? AND user_id = ?`,
		boardID,
		userID,
	); err != nil {
		return fmt.Errorf("delete board member: %w", err)
	}
	return nil
}

func (r *BoardRepository) ListMembers(ctx context.Context, boardID int64) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.id, u.email, u.name, u.password_hash, u.theme, u.notifications, u.created_at, u.updated_at
FROM users u
JOIN board_members m ON m.user_id = u.id
WHERE m.board_id = ?
ORDER BY u.id ASC`,
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("query board members: %w", err)
	}
	defer rows.Close()

	var members []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.Theme,
			&user.Notifications,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan board member: %w", err)
		}
		members = append(members, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate board members: %w", err)
	}
	return members, nil
}

func (r *BoardRepository) IsMember(ctx context.Context, boardID, userID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT COUNT(1)
FROM board_members
WHERE board_id = ? AND user_id = ?`,
		boardID,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("scan board membership: %w", err)
	}
	return count > 0, nil
}
