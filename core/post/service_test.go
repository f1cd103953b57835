package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/user"
	inmemdb "github.com/campushelper/backend/storage/database/inmem"
	testutil "github.com/campushelper/backend/tests"
)

func TestService(t *testing.T) {
	db := inmemdb.Open()
	svc := post.NewService(inmemdb.NewPostRepository(db))
	usrRepo := inmemdb.NewUserRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, usrRepo, "alice@test.cd", "secret1", user.RoleStudent)
	bob := testutil.CreateUser(t, usrRepo, "bob@test.cd", "secret1", user.RoleStudent)

	p1, err := svc.Create(ctx, alice.ID, post.NewPost{Title: "First", Body: "one"})
	require.NoError(t, err)
	p2, err := svc.Create(ctx, alice.ID, post.NewPost{Title: "Second", Body: "two"})
	require.NoError(t, err)
	p3, err := svc.Create(ctx, bob.ID, post.NewPost{Title: "Third", Body: "three"})
	require.NoError(t, err)

	assert.NotEmpty(t, p1.ID)
	assert.Equal(t, alice.ID, p1.OwnerID)

	t.Run("Mine", func(t *testing.T) {
		mine, err := svc.Mine(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		// newest first
		assert.Equal(t, p2.ID, mine[0].ID)
		assert.Equal(t, p1.ID, mine[1].ID)
	})

	t.Run("All attaches owner emails", func(t *testing.T) {
		all, err := svc.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)

		byID := make(map[string]post.Post, len(all))
		for _, p := range all {
			byID[p.ID] = p
		}
		assert.Equal(t, alice.Email, byID[p1.ID].OwnerEmail)
		assert.Equal(t, bob.Email, byID[p3.ID].OwnerEmail)
	})
}
