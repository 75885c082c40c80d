package session

// Session is the client-held record of the authenticated user plus the
// bearer token returned by login. Name and Email are a cached projection of
// the profile as of the last login or profile update. It is serialized as a
// single JSON record by the persistence backend.
type Session struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfileUpdate carries the session fields to merge after a profile change.
// Nil fields are left untouched; the token never changes through an update.
type ProfileUpdate struct {
	ID    *int
	Name  *string
	Email *string
}
