package upperdb

import (
	"context"

	db2 "github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"

	"github.com/upper/db/v4"
)

type GroupDB struct {
	sess db.Session
}

func getGroupDB(sess db.Session) *GroupDB {
	return &GroupDB{sess}
}

func (gdb *GroupDB) CreateGroup(ctx context.Context, req *db2.CreateGroup) (int64, error) {
	res, err := gdb.sess.SQL().
		InsertInto("blog_group").
		Columns("title", "slug", "description").
		Values(req.Title, req.Slug, req.Description).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (gdb *GroupDB) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := gdb.sess.SQL().
		Select("*").
		From("blog_group").
		Where("slug = ?", slug).
		IteratorContext(ctx).
		One(&group); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (gdb *GroupDB) GetGroups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	return groups, gdb.sess.SQL().
		Select("*").
		From("blog_group").
		OrderBy("title").
		IteratorContext(ctx).
		All(&groups)
}
