package upperdb

import (
	"context"

	db2 "github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"

	"github.com/upper/db/v4"
)

type FollowDB struct {
	sess db.Session
}

func getFollowDB(sess db.Session) *FollowDB {
	return &FollowDB{sess}
}

func (fdb *FollowDB) CreateFollow(ctx context.Context, follow *model.Follow) error {
	_, err := fdb.sess.WithContext(ctx).
		Collection("follow").
		Insert(follow)
	if err != nil && db2.IsDupKeyErr(err) {
		// the edge already exists; at most one per pair
		return nil
	}
	return err
}

func (fdb *FollowDB) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	return fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("follower_id = ? AND author_id = ?", follow.FollowerId, follow.AuthorId).
		Delete()
}

func (fdb *FollowDB) IsFollowing(ctx context.Context, follow *model.Follow) (bool, error) {
	count, err := fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("follower_id = ? AND author_id = ?", follow.FollowerId, follow.AuthorId).
		Count()
	return count > 0, err
}

func (fdb *FollowDB) GetFollowedAuthorIds(ctx context.Context, followerId int64) ([]int64, error) {
	var follows []*model.Follow
	if err := fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("follower_id = ?", followerId).
		All(&follows); err != nil {
		return nil, err
	}
	ids := make([]int64, len(follows))
	for i, follow := range follows {
		ids[i] = follow.AuthorId
	}
	return ids, nil
}
