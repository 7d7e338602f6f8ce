package entity

import "time"

// Category is an award class voters choose a nominee within.
// Created and edited by admins only.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
