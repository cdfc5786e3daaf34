package models

import "time"

type Review struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Clinic     string    `json:"clinic"`
	City       string    `json:"city"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	IsApproved bool      `json:"is_approved"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}
