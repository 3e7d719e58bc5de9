package domain

import "time"

// Board is an owned collection of tasks. The owner is fixed at creation;
// members gain update rights without ownership.
type Board struct {
	ID        int64
	Title     string
	OwnerID   int64
	CreatedAt time.Time
	Members   []User
	Tasks     []Task
}
