package model

import (
	"time"

	"github.com/google/uuid"
)

// Token is the opaque bearer credential for a user. At most one token
// exists per user and its key never changes after creation.
type Token struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Key       uuid.UUID `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}
