package domain

import "time"

type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Date        Date      `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	Image       *string   `db:"image" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
