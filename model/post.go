package model

import "time"

type Post struct {
	Id        int64     `json:"id"`
	Author    *User     `json:"author"`
	Group     *Group    `json:"group,omitempty"` // nil when the post has no group
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"` // path relative to the media root
	CreatedAt time.Time `json:"createdAt"`
}

// CanEdit reports whether user may mutate or delete the post. Authorship
// is fixed at creation time.
func (p *Post) CanEdit(user *User) bool {
	return user != nil && user.Id == p.Author.Id
}

type Comment struct {
	Id        int64     `json:"id"`
	PostId    int64     `json:"postId"`
	Author    *User     `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
