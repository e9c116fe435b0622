package model

// Group is a topical category for posts. Groups are administered through
// the admin CLI; there is no end-user create/edit flow.
type Group struct {
	Id          int64  `db:"id,omitempty" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}
