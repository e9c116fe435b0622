package db

import (
	"context"
	"database/sql"

	"github.com/velichko-dev/inkline/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	PostDatabase
	GroupDatabase
	CommentDatabase
	UserDatabase
	FollowDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreatePost struct {
	AuthorId int64
	Text     string
	Image    string // relative media path, empty when no upload
	GroupId  *int64 // nil when the post has no group
}

// UpdatePost carries the mutable post fields. An empty Image keeps the
// stored one; authorship and creation time never change.
type UpdatePost struct {
	Text    string
	Image   string
	GroupId *int64
}

// PostsQuery filters the reverse-chronological post listing. At most one
// of GroupId, AuthorId, AuthorIds is set; all unset means the global index.
type PostsQuery struct {
	GroupId   *int64
	AuthorId  *int64
	AuthorIds []int64
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	DeletePost(ctx context.Context, id int64) error
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsQuery) ([]*model.Post, error)
}

type CreateGroup struct {
	Title       string
	Slug        string
	Description string
}

type GroupDatabase interface {
	CreateGroup(ctx context.Context, req *CreateGroup) (groupId int64, err error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	GetGroups(ctx context.Context) ([]*model.Group, error)
}

type CreateComment struct {
	PostId   int64
	AuthorId int64
	Text     string
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	// GetCommentsForPost returns the post's comments newest first.
	GetCommentsForPost(ctx context.Context, postId int64) ([]*model.Comment, error)
}

type CreateUser struct {
	Username     string
	PasswordHash string
}

type UserDatabase interface {
	CreateUser(ctx context.Context, req *CreateUser) (userId int64, err error)
	GetUserById(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type FollowDatabase interface {
	// CreateFollow is a no-op when the edge already exists.
	CreateFollow(ctx context.Context, follow *model.Follow) error
	// DeleteFollow is a no-op when no matching edge exists.
	DeleteFollow(ctx context.Context, follow *model.Follow) error
	IsFollowing(ctx context.Context, follow *model.Follow) (bool, error)
	GetFollowedAuthorIds(ctx context.Context, followerId int64) ([]int64, error)
}
