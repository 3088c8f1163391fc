package employee

import (
	"time"
)

type Employee struct {
	ID                 string
	Code               string
	Name               string
	NationalID         string
	Phone              *string
	Email              string
	PasswordHash       *string
	DOB                time.Time
	ResetCode          *string
	ResetCodeExpiresAt *time.Time
	Status             Status
	Position           Position
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO: today's attendance, populated by search queries
	TodayArrivedAt *time.Time
	TodayLeftAt    *time.Time
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type Position string

const (
	PositionManager   Position = "manager"
	PositionDeveloper Position = "developer"
	PositionCleaner   Position = "cleaner"
)

func Positions() []string {
	return []string{
		string(PositionManager),
		string(PositionDeveloper),
		string(PositionCleaner),
	}
}

func Statuses() []string {
	return []string{
		string(StatusActive),
		string(StatusSuspended),
	}
}

func (e Employee) IsManager() bool {
	return e.Position == PositionManager
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
