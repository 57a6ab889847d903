package entity

import "time"

type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypeImage PostType = "image"
	PostTypeMixed PostType = "mixed"
)

type Post struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Content      string     `json:"content"`
	Image        string     `json:"image,omitempty"`
	PostType     PostType   `json:"post_type"`
	UserIP       string     `json:"user_ip,omitempty"`
	UserAgent    string     `json:"user_agent,omitempty"`
	ViewCount    int        `json:"view_count"`
	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DeriveType classifies a post by what it carries: mixed when both content and
// an image are present, image when only an image, text otherwise.
func DeriveType(content, image string) PostType {
	switch {
	case content != "" && image != "":
		return PostTypeMixed
	case image != "":
		return PostTypeImage
	default:
		return PostTypeText
	}
}
