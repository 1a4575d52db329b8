package models

// Publication is a post made by a user.
type Publication struct {
	ID          int64
	Title       string
	Description *string
	UserID      string
}
