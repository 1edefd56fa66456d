package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrForbidden = errors.New("access forbidden")

// Product is a catalog item owned by the user that created it.
// OwnerID is set once at creation and never reassigned.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	IsApproved  bool      `json:"is_approved"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
