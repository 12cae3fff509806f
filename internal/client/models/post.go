// Package models defines the wire shapes returned by the Vibe API.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexID is an identifier that some deployments serialize as a JSON number
// and others as a string. It unmarshals from either form and keeps the
// textual representation for display.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "null" {
		s = ""
	}
	*f = FlexID(s)
	return nil
}

// Post is a single feed entry. The client treats it as read-only: it is
// decoded from a feed snapshot, rendered, and discarded on the next refresh.
// CreatedAt is an opaque server timestamp and is displayed verbatim.
type Post struct {
	ID             int64  `json:"id"`
	AuthorID       FlexID `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
	ParentID       *int64 `json:"parent_id"`
	Likes          int    `json:"likes"`
	Replies        []Post `json:"replies"`
}

// Author returns the display name for the post's author: the username when
// the server provides one, the raw author id otherwise.
func (p *Post) Author() string {
	if p.AuthorUsername != "" {
		return p.AuthorUsername
	}
	return string(p.AuthorID)
}

// Profile is a user page: identity plus that user's posts in server order.
type Profile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
	Posts       []Post `json:"posts"`
}

// DecodePosts decodes a feed body into posts. The caller has already
// established that the body is a JSON array.
func DecodePosts(body string) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal([]byte(body), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
