package entity

import (
	"time"
)

// DateLayout is the calendar date format used on the wire and in the steps table.
const DateLayout = "2006-01-02"

type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}

// Step is one daily record. Date carries no time component (midnight UTC).
type Step struct {
	ID        int64
	UserID    int64
	Date      time.Time
	StepCount int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (s *Step) Deleted() bool {
	return s.DeletedAt != nil
}
