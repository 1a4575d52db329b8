package models

// Chat is a private conversation between two users. The pair is unordered:
// one chat exists per pair regardless of who created it.
type Chat struct {
	ID      int64
	UserID1 string
	UserID2 string
}

// Group is a named conversation owned by one user.
type Group struct {
	ID          int64
	Title       string
	Description *string
	OwnerID     string
	Members     []string
}

// IsMember reports whether userID belongs to the group.
func (g *Group) IsMember(userID string) bool {
	for _, member := range g.Members {
		if member == userID {
			return true
		}
	}
	return false
}

// IsParticipant reports whether userID is one of the chat's two users.
func (c *Chat) IsParticipant(userID string) bool {
	return c.UserID1 == userID || c.UserID2 == userID
}
