package domain

import "time"

// Member is an association member shown on the public members page.
// Photo holds the stored file path; the service layer rewrites it to a
// public /uploads URL before it leaves the API.
type Member struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     *string   `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Photo     *string   `db:"photo" json:"photo"`
	Role      *string   `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
