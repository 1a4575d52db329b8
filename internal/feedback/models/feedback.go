package models

// Comment is a user's comment under a publication.
type Comment struct {
	ID            int64
	Text          string
	PublicationID int64
	UserID        string
}

// Like marks that a user liked a publication. A user likes a publication at
// most once.
type Like struct {
	ID            int64
	PublicationID int64
	UserID        string
}
