package model

import "time"

type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            *string   `json:"isbn,omitempty" db:"isbn"`
	Publisher       *string   `json:"publisher,omitempty" db:"publisher"`
	PublishedYear   *int      `json:"publishedYear,omitempty" db:"published_year"`
	Category        *string   `json:"category,omitempty" db:"category"`
	ShelfLocation   *string   `json:"shelfLocation,omitempty" db:"shelf_location"`
	TotalCopies     int       `json:"totalCopies" db:"total_copies"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type BookInput struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Author        string  `json:"author" validate:"required,max=255"`
	ISBN          *string `json:"isbn" validate:"omitempty,max=20"`
	Publisher     *string `json:"publisher" validate:"omitempty,max=255"`
	PublishedYear *int    `json:"publishedYear" validate:"omitempty,gte=0,lte=9999"`
	Category      *string `json:"category" validate:"omitempty,max=100"`
	ShelfLocation *string `json:"shelfLocation" validate:"omitempty,max=50"`
	TotalCopies   int     `json:"totalCopies" validate:"gte=1"`
}

type BookFilter struct {
	Category      string
	Search        string
	AvailableOnly bool
}
