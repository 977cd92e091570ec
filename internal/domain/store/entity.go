package store

import (
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
)

type Store struct {
	ID        string
	Name      string
	State     holiday.GermanState
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
