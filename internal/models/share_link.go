package models

// ShareLink maps a public hash to the user whose content it exposes.
// At most one link exists per user; the hash itself carries no
// uniqueness guarantee across users.
type ShareLink struct {
	Hash   string `json:"hash"`
	UserID string `json:"userId"`
}

// SharedBrain is the public view served for a valid share hash.
type SharedBrain struct {
	Username string    `json:"username"`
	Content  []Content `json:"content"`
}
