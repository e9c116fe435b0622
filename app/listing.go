package app

import (
	"context"

	"github.com/velichko-dev/inkline/config"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
)

// ListPosts runs the one parameterized listing operation behind the index,
// group, profile and feed pages: query, order newest first, paginate.
func ListPosts(
	ctx context.Context,
	database db.PostDatabase,
	query *db.PostsQuery,
	pageNumber int,
) (*Page[*model.Post], error) {
	posts, err := database.GetPosts(ctx, query)
	if err != nil {
		return nil, err
	}
	return Paginate(posts, pageNumber, config.PAGE_SIZE), nil
}
