package domain

import "time"

// Profile is a tracked storefront whose daily revenue is recorded.
// Deleting a profile only flips Active to false; its sales history
// is never removed.
type Profile struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProfileRepository interface {
	Create(profile *Profile) (*Profile, error)
	GetByID(id int32) (*Profile, error)
	GetAll(activeOnly bool) ([]*Profile, error)
	Update(id int32, name, color string) (*Profile, error)
	Deactivate(id int32) error
}
