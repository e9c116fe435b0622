package upperdb

import (
	"context"
	"time"

	db2 "github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
	"github.com/velichko-dev/inkline/util"

	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

type flattenedComment struct {
	Id             int64     `db:"id"`
	PostId         int64     `db:"post_id"`
	Text           string    `db:"text"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorId       int64     `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
}

var commentColumns = []interface{}{
	"c.id",
	"c.post_id",
	"c.text",
	"c.created_at",
	"u.id AS author_id",
	"u.username AS author_username",
}

func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comment").
		Columns("post_id", "author_id", "text", "created_at").
		Values(req.PostId, req.AuthorId, req.Text, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetCommentsForPost returns comments newest first, so the most recent
// comment is always element 0.
func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var flattenedComments []flattenedComment
	if err := cdb.sess.SQL().
		Select(commentColumns...).
		From("comment AS c").
		Join("user AS u").On("c.author_id = u.id").
		Where("c.post_id = ?", postId).
		OrderBy("c.created_at DESC", "c.id DESC").
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, len(flattenedComments))
	for i, flattened := range flattenedComments {
		comments[i] = &model.Comment{
			Id:     flattened.Id,
			PostId: flattened.PostId,
			Author: &model.User{
				Id:       flattened.AuthorId,
				Username: flattened.AuthorUsername,
				Avatar:   util.Avatar(flattened.AuthorUsername),
			},
			Text:      flattened.Text,
			CreatedAt: flattened.CreatedAt,
		}
	}
	return comments, nil
}
