package upperdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db2 "github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
)

func openTestDB(t *testing.T) db2.Database {
	t.Helper()

	database, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	require.NoError(t, Bootstrap(database, "sqlite"))
	return database
}

func createTestUser(t *testing.T, database db2.Database, username string) int64 {
	t.Helper()
	userId, err := database.CreateUser(context.Background(), &db2.CreateUser{
		Username:     username,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return userId
}

func createTestGroup(t *testing.T, database db2.Database, title, slug string) int64 {
	t.Helper()
	groupId, err := database.CreateGroup(context.Background(), &db2.CreateGroup{
		Title:       title,
		Slug:        slug,
		Description: title + " description",
	})
	require.NoError(t, err)
	return groupId
}

func TestUserRoundTrip(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	userId := createTestUser(t, database, "leo")

	byId, err := database.GetUserById(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, "leo", byId.Username)
	assert.NotEmpty(t, byId.Avatar)

	byName, err := database.GetUserByUsername(ctx, "leo")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, userId, byName.Id)

	missing, err := database.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateUsernameIsDupKeyErr(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	createTestUser(t, database, "leo")
	_, err := database.CreateUser(ctx, &db2.CreateUser{Username: "leo", PasswordHash: "y"})
	require.Error(t, err)
	assert.True(t, db2.IsDupKeyErr(err))
}

func TestGroupRoundTrip(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	createTestGroup(t, database, "Test group", "test_slug")
	createTestGroup(t, database, "Another group", "another")

	group, err := database.GetGroupBySlug(ctx, "test_slug")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "Test group", group.Title)
	assert.Equal(t, "Test group description", group.Description)

	missing, err := database.GetGroupBySlug(ctx, "no_such_slug")
	require.NoError(t, err)
	assert.Nil(t, missing)

	groups, err := database.GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Another group", groups[0].Title)
}

func TestPostLifecycle(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	authorId := createTestUser(t, database, "author")
	groupId := createTestGroup(t, database, "Test group", "test_slug")

	postId, err := database.CreatePost(ctx, &db2.CreatePost{
		AuthorId: authorId,
		Text:     "first",
		GroupId:  &groupId,
	})
	require.NoError(t, err)

	post, err := database.GetPostById(ctx, postId)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "first", post.Text)
	assert.Equal(t, "author", post.Author.Username)
	require.NotNil(t, post.Group)
	assert.Equal(t, "test_slug", post.Group.Slug)
	assert.False(t, post.CreatedAt.IsZero())

	require.NoError(t, database.UpdatePost(ctx, postId, &db2.UpdatePost{
		Text: "edited",
	}))
	post, err = database.GetPostById(ctx, postId)
	require.NoError(t, err)
	assert.Equal(t, "edited", post.Text)
	assert.Nil(t, post.Group, "edit cleared the group")

	require.NoError(t, database.DeletePost(ctx, postId))
	post, err = database.GetPostById(ctx, postId)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestUpdatePostKeepsImageWhenEmpty(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	authorId := createTestUser(t, database, "author")
	postId, err := database.CreatePost(ctx, &db2.CreatePost{
		AuthorId: authorId,
		Text:     "with image",
		Image:    "posts/cat.gif",
	})
	require.NoError(t, err)

	require.NoError(t, database.UpdatePost(ctx, postId, &db2.UpdatePost{Text: "still with image"}))
	post, err := database.GetPostById(ctx, postId)
	require.NoError(t, err)
	assert.Equal(t, "posts/cat.gif", post.Image)

	require.NoError(t, database.UpdatePost(ctx, postId, &db2.UpdatePost{
		Text:  "new image",
		Image: "posts/dog.png",
	}))
	post, err = database.GetPostById(ctx, postId)
	require.NoError(t, err)
	assert.Equal(t, "posts/dog.png", post.Image)
}

func TestGetPostsFilters(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	aliceId := createTestUser(t, database, "alice")
	bobId := createTestUser(t, database, "bob")
	groupId := createTestGroup(t, database, "Test group", "test_slug")

	_, err := database.CreatePost(ctx, &db2.CreatePost{AuthorId: aliceId, Text: "alice grouped", GroupId: &groupId})
	require.NoError(t, err)
	_, err = database.CreatePost(ctx, &db2.CreatePost{AuthorId: aliceId, Text: "alice free"})
	require.NoError(t, err)
	_, err = database.CreatePost(ctx, &db2.CreatePost{AuthorId: bobId, Text: "bob free"})
	require.NoError(t, err)

	all, err := database.GetPosts(ctx, &db2.PostsQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bob free", all[0].Text, "newest first")

	grouped, err := database.GetPosts(ctx, &db2.PostsQuery{GroupId: &groupId})
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, "alice grouped", grouped[0].Text)

	byAuthor, err := database.GetPosts(ctx, &db2.PostsQuery{AuthorId: &aliceId})
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byAuthors, err := database.GetPosts(ctx, &db2.PostsQuery{AuthorIds: []int64{bobId}})
	require.NoError(t, err)
	require.Len(t, byAuthors, 1)
	assert.Equal(t, "bob free", byAuthors[0].Text)

	none, err := database.GetPosts(ctx, &db2.PostsQuery{AuthorIds: []int64{}})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCommentsNewestFirstAndCascade(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	authorId := createTestUser(t, database, "author")
	postId, err := database.CreatePost(ctx, &db2.CreatePost{AuthorId: authorId, Text: "post"})
	require.NoError(t, err)

	for _, text := range []string{"first", "second", "third"} {
		_, err := database.CreateComment(ctx, &db2.CreateComment{
			PostId:   postId,
			AuthorId: authorId,
			Text:     text,
		})
		require.NoError(t, err)
	}

	comments, err := database.GetCommentsForPost(ctx, postId)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Text)
	assert.Equal(t, "first", comments[2].Text)
	assert.Equal(t, "author", comments[0].Author.Username)

	require.NoError(t, database.DeletePost(ctx, postId))
	comments, err = database.GetCommentsForPost(ctx, postId)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestFollowEdgeSemantics(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	followerId := createTestUser(t, database, "follower")
	authorId := createTestUser(t, database, "author")
	edge := &model.Follow{FollowerId: followerId, AuthorId: authorId}

	following, err := database.IsFollowing(ctx, edge)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, database.CreateFollow(ctx, edge))
	// repeating the request leaves a single edge
	require.NoError(t, database.CreateFollow(ctx, edge))

	following, err = database.IsFollowing(ctx, edge)
	require.NoError(t, err)
	assert.True(t, following)

	ids, err := database.GetFollowedAuthorIds(ctx, followerId)
	require.NoError(t, err)
	assert.Equal(t, []int64{authorId}, ids)

	require.NoError(t, database.DeleteFollow(ctx, edge))
	require.NoError(t, database.DeleteFollow(ctx, edge))

	following, err = database.IsFollowing(ctx, edge)
	require.NoError(t, err)
	assert.False(t, following)

	ids, err = database.GetFollowedAuthorIds(ctx, followerId)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
