package model

import (
	"fmt"
	"time"
)

// PEGI is the age-rating of a game.
type PEGI int16

const (
	Pegi3  PEGI = 3
	Pegi7  PEGI = 7
	Pegi12 PEGI = 12
	Pegi16 PEGI = 16
	Pegi18 PEGI = 18
)

// Display returns the label rendered in API responses ("Pegi3", "Pegi18", ...).
func (p PEGI) Display() string {
	return fmt.Sprintf("Pegi%d", int16(p))
}

type Game struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Cover       string     `json:"cover"` // media path relative to the media root
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	ReleasedAt  time.Time  `json:"released_at"`
	Pegi        PEGI       `json:"pegi"`
	Category    *Category  `json:"category"`
	Platforms   []Platform `json:"platforms"`
}
