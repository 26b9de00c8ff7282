package model

import "time"

// DefaultProjectImage is used when a project is created without an image.
const DefaultProjectImage = "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=600&fit=crop"

type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Image        string    `json:"image"`
	Github       string    `json:"github"`
	Live         string    `json:"live"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
