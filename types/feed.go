package types

// FeedResponse is the slice of the Bluesky getFeed payload the live demo
// endpoint needs.
type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

// FeedEntry represents each post in the feed.
type FeedEntry struct {
	Post Post `json:"post"`
}

// Post represents an individual post.
type Post struct {
	Author Author `json:"author"`
	URI    string `json:"uri"`
	Record Record `json:"record"`
}

// Author represents the author of a post.
type Author struct {
	DID         string `json:"did"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

// Record represents the content of a post.
type Record struct {
	Type      string `json:"$type"`
	CreatedAt string `json:"createdAt"`
	Text      string `json:"text"`
}
