package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/campushelper/backend/core/post"
)

type postRepository struct {
	db *DB
}

var _ post.Repository = (*postRepository)(nil)

func NewPostRepository(db *DB) *postRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) CreatePost(_ context.Context, pst post.Post) (post.Post, error) {
	repo.db.post.mutex.Lock()
	defer repo.db.post.mutex.Unlock()

	if pst.ID == "" {
		pst.ID = uuid.New().String()
	}
	repo.db.post.t[pst.ID] = &pst
	return pst, nil
}

func (repo *postRepository) GetPostsByOwner(_ context.Context, ownerID string) ([]post.Post, error) {
	repo.db.post.mutex.RLock()
	defer repo.db.post.mutex.RUnlock()

	posts := make([]post.Post, 0)
	for _, pst := range repo.db.post.t {
		if pst.OwnerID == ownerID {
			posts = append(posts, *pst)
		}
	}
	sortPosts(posts)
	return posts, nil
}

func (repo *postRepository) QueryAllPosts(_ context.Context) ([]post.Post, error) {
	repo.db.post.mutex.RLock()
	posts := make([]post.Post, 0, len(repo.db.post.t))
	for _, pst := range repo.db.post.t {
		posts = append(posts, *pst)
	}
	repo.db.post.mutex.RUnlock()

	// join against the user table the way the SQL repository does
	repo.db.user.mutex.RLock()
	for i, pst := range posts {
		if owner, ok := repo.db.user.t[pst.OwnerID]; ok {
			posts[i].OwnerEmail = owner.Email
		}
	}
	repo.db.user.mutex.RUnlock()

	sortPosts(posts)
	return posts, nil
}

func sortPosts(posts []post.Post) {
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
}
