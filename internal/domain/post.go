package domain

import "time"

// Post represents a blog post as returned by the backend. The server is
// authoritative for ID, AuthorName and Date; the client never assigns them.
type Post struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`

	// AuthorName is the display name of the post's owner.
	AuthorName string `json:"author_name"`

	// Date is the server-assigned creation timestamp.
	Date time.Time `json:"date"`
}

// Profile is the account record of the authenticated user. Email is immutable
// once set; profile update requests never carry it.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio,omitempty"`
}
