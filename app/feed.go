package app

import (
	"context"

	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
)

// FeedForUser assembles the follow feed: every post authored by someone
// the user follows, newest first, paginated. Authorship is unique per
// post, so the union needs no deduplication.
func FeedForUser(
	ctx context.Context,
	database db.Database,
	user *model.User,
	pageNumber int,
) (*Page[*model.Post], error) {
	authorIds, err := database.GetFollowedAuthorIds(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	return ListPosts(ctx, database, &db.PostsQuery{AuthorIds: authorIds}, pageNumber)
}
