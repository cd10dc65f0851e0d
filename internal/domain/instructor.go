package domain

import "time"

type Instructor struct {
	Id          int64     `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Expertise   string    `json:"expertise"`
	Experience  string    `json:"experience"`
	CreatedAt   time.Time `json:"createdAt"`
}
