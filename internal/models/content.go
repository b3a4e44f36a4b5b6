package models

// Content is a single bookmarked record owned by one user.
type Content struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Link   string   `json:"link"`
	Type   string   `json:"type"`   // e.g. "article", "video", "tweet"
	Tags   []string `json:"tags"`   // tag ids; always [] on creation
	UserID string   `json:"userId"` // owner; immutable after creation
}

// Owner is the expanded user reference returned by the authenticated list.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ContentWithOwner is Content with the owner reference expanded at read time.
// The JSON field keeps the "userId" name, holding the expanded object.
type ContentWithOwner struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
	Owner Owner    `json:"userId"`
}
