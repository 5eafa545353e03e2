// Package serializer turns persisted entities into the JSON shapes the API
// exposes. One explicit function per entity; collections serialize
// element-wise preserving order. Enum fields render their label, never the
// stored integer, and media paths become absolute URLs.
package serializer

import (
	"strconv"
	"strings"

	"github.com/rabgonzalez/GameSide/internal/model"
)

// Django-style ISO-8601 with microseconds.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Serializer resolves media paths against the request's base URL
// ("http://host") and the configured media prefix ("/media/").
type Serializer struct {
	BaseURL  string
	MediaURL string
}

func New(baseURL, mediaURL string) *Serializer {
	return &Serializer{BaseURL: baseURL, MediaURL: mediaURL}
}

func (s *Serializer) mediaURL(path string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	prefix := "/" + strings.Trim(s.MediaURL, "/") + "/"
	return base + prefix + strings.TrimPrefix(path, "/")
}

type CategoryJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (s *Serializer) Category(c *model.Category) *CategoryJSON {
	if c == nil {
		return nil
	}
	return &CategoryJSON{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
	}
}

func (s *Serializer) Categories(categories []model.Category) []*CategoryJSON {
	out := make([]*CategoryJSON, 0, len(categories))
	for i := range categories {
		out = append(out, s.Category(&categories[i]))
	}
	return out
}

type PlatformJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

func (s *Serializer) Platform(p *model.Platform) *PlatformJSON {
	if p == nil {
		return nil
	}
	return &PlatformJSON{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Logo:        s.mediaURL(p.Logo),
	}
}

func (s *Serializer) Platforms(platforms []model.Platform) []*PlatformJSON {
	out := make([]*PlatformJSON, 0, len(platforms))
	for i := range platforms {
		out = append(out, s.Platform(&platforms[i]))
	}
	return out
}

type GameJSON struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Cover       string          `json:"cover"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	ReleasedAt  string          `json:"released_at"`
	Pegi        string          `json:"pegi"`
	Category    *CategoryJSON   `json:"category"`
	Platforms   []*PlatformJSON `json:"platforms"`
}

func (s *Serializer) Game(g *model.Game) *GameJSON {
	if g == nil {
		return nil
	}
	return &GameJSON{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
		Cover:       s.mediaURL(g.Cover),
		Price:       g.Price,
		Stock:       g.Stock,
		ReleasedAt:  g.ReleasedAt.Format("2006-01-02"),
		Pegi:        g.Pegi.Display(),
		Category:    s.Category(g.Category),
		Platforms:   s.Platforms(g.Platforms),
	}
}

func (s *Serializer) Games(games []model.Game) []*GameJSON {
	out := make([]*GameJSON, 0, len(games))
	for i := range games {
		out = append(out, s.Game(&games[i]))
	}
	return out
}

// UserJSON is the reduced user view; the password never leaves the store.
type UserJSON struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (s *Serializer) User(u *model.User) *UserJSON {
	if u == nil {
		return nil
	}
	return &UserJSON{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

type ReviewJSON struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Game      *GameJSON `json:"game"`
	Author    *UserJSON `json:"author"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func (s *Serializer) Review(r *model.Review) *ReviewJSON {
	if r == nil {
		return nil
	}
	return &ReviewJSON{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Game:      s.Game(r.Game),
		Author:    s.User(r.Author),
		CreatedAt: r.CreatedAt.Format(timestampLayout),
		UpdatedAt: r.UpdatedAt.Format(timestampLayout),
	}
}

func (s *Serializer) Reviews(reviews []model.Review) []*ReviewJSON {
	out := make([]*ReviewJSON, 0, len(reviews))
	for i := range reviews {
		out = append(out, s.Review(&reviews[i]))
	}
	return out
}

type OrderJSON struct {
	ID        int64       `json:"id"`
	Status    string      `json:"status"`
	Key       *string     `json:"key"`
	Games     []*GameJSON `json:"games"`
	Price     string      `json:"price"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// Order masks the key unless the order is paid: until then the key is a
// receipt code the client has not earned yet.
func (s *Serializer) Order(o *model.Order) *OrderJSON {
	if o == nil {
		return nil
	}
	var key *string
	if o.Status == model.StatusPaid {
		k := o.Key.String()
		key = &k
	}
	return &OrderJSON{
		ID:        o.ID,
		Status:    o.Status.Display(),
		Key:       key,
		Games:     s.Games(o.Games),
		Price:     strconv.FormatFloat(o.Price(), 'f', 2, 64),
		CreatedAt: o.CreatedAt.Format(timestampLayout),
		UpdatedAt: o.UpdatedAt.Format(timestampLayout),
	}
}
