package upperdb

import (
	"context"
	"database/sql"
	"time"

	db2 "github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/db/dao"
	"github.com/velichko-dev/inkline/model"
	"github.com/velichko-dev/inkline/util"

	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

type flattenedPost struct {
	Id             int64          `db:"id"`
	Text           string         `db:"text"`
	Image          string         `db:"image"`
	CreatedAt      time.Time      `db:"created_at"`
	AuthorId       int64          `db:"author_id"`
	AuthorUsername string         `db:"author_username"`
	GroupId        dao.NullInt64  `db:"group_id"`
	GroupTitle     sql.NullString `db:"group_title"`
	GroupSlug      sql.NullString `db:"group_slug"`
}

var postColumns = []interface{}{
	"p.id",
	"p.text",
	"p.image",
	"p.created_at",
	"u.id AS author_id",
	"u.username AS author_username",
	"g.id AS group_id",
	"g.title AS group_title",
	"g.slug AS group_slug",
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("author_id", "group_id", "text", "image", "created_at").
		Values(req.AuthorId, dao.NullInt64From(req.GroupId), req.Text, req.Image, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	updater := pdb.sess.SQL().
		Update("post").
		Set("text", req.Text).
		Set("group_id", dao.NullInt64From(req.GroupId))
	if req.Image != "" {
		updater = updater.Set("image", req.Image)
	}
	_, err := updater.Where("id = ?", id).ExecContext(ctx)
	return err
}

// DeletePost removes the post together with its comments. SQLite runs
// without foreign_keys enforcement, so the cascade is explicit.
func (pdb *PostDB) DeletePost(ctx context.Context, id int64) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			DeleteFrom("comment").
			Where("post_id = ?", id).
			ExecContext(ctx); err != nil {
			return err
		}
		_, err := sess.SQL().
			DeleteFrom("post").
			Where("id = ?", id).
			ExecContext(ctx)
		return err
	}, nil)
}

func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post flattenedPost
	if err := pdb.selectPosts().
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&post), nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	selector := pdb.selectPosts()
	switch {
	case query.GroupId != nil:
		selector = selector.Where("p.group_id = ?", *query.GroupId)
	case query.AuthorId != nil:
		selector = selector.Where("p.author_id = ?", *query.AuthorId)
	case query.AuthorIds != nil:
		if len(query.AuthorIds) == 0 {
			return []*model.Post{}, nil
		}
		selector = selector.Where("p.author_id IN ?", query.AuthorIds)
	}

	var flattenedPosts []flattenedPost
	if err := selector.
		IteratorContext(ctx).
		All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(flattenedPosts))
	for i := range flattenedPosts {
		posts[i] = buildPostFromFlattened(&flattenedPosts[i])
	}
	return posts, nil
}

func (pdb *PostDB) selectPosts() db.Selector {
	return pdb.sess.SQL().
		Select(postColumns...).
		From("post AS p").
		Join("user AS u").On("p.author_id = u.id").
		LeftJoin("blog_group AS g").On("p.group_id = g.id").
		OrderBy("p.created_at DESC", "p.id DESC")
}

func buildPostFromFlattened(post *flattenedPost) *model.Post {
	var group *model.Group
	if post.GroupId.Valid {
		group = &model.Group{
			Id:    post.GroupId.Int64,
			Title: post.GroupTitle.String,
			Slug:  post.GroupSlug.String,
		}
	}
	return &model.Post{
		Id: post.Id,
		Author: &model.User{
			Id:       post.AuthorId,
			Username: post.AuthorUsername,
			Avatar:   util.Avatar(post.AuthorUsername),
		},
		Group:     group,
		Text:      post.Text,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
	}
}
