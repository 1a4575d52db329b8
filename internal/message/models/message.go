package models

// ChatMessage is a message sent into a private chat.
type ChatMessage struct {
	ID       int64
	Text     string
	AuthorID string
	ChatID   int64
}

// GroupMessage is a message sent into a group.
type GroupMessage struct {
	ID       int64
	Text     string
	AuthorID string
	GroupID  int64
}
