package model

// Follow is a directed edge: the follower receives the author's posts in
// their feed. At most one edge exists per (follower, author) pair and a
// user never follows themselves.
type Follow struct {
	FollowerId int64 `db:"follower_id" json:"followerId"`
	AuthorId   int64 `db:"author_id" json:"authorId"`
}
