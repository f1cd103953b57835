package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/post"
)

type postRepository struct {
	db *sqlx.DB
}

var _ post.Repository = (*postRepository)(nil)

func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *postRepository) CreatePost(ctx context.Context, pst post.Post) (post.Post, error) {
	if pst.ID == "" {
		pst.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO post (id, title, body, owner_id, created_at, updated_at)
		VALUES (:id, :title, :body, :owner_id, :created_at, :updated_at)`,
		pst,
	)
	if err != nil {
		return post.Post{}, errors.Wrap(err, "inserting post")
	}
	return pst, nil
}

func (repo *postRepository) GetPostsByOwner(ctx context.Context, ownerID string) ([]post.Post, error) {
	posts := make([]post.Post, 0)
	err := repo.db.SelectContext(ctx, &posts, `
		SELECT id, title, body, owner_id, created_at, updated_at
		FROM post
		WHERE owner_id = $1
		ORDER BY created_at DESC`,
		ownerID,
	)
	return posts, errors.Wrap(err, "querying posts by owner")
}

func (repo *postRepository) QueryAllPosts(ctx context.Context) ([]post.Post, error) {
	posts := make([]post.Post, 0)
	err := repo.db.SelectContext(ctx, &posts, `
		SELECT p.id, p.title, p.body, p.owner_id, u.email AS owner_email, p.created_at, p.updated_at
		FROM post p
		JOIN "user" u ON u.id = p.owner_id
		ORDER BY p.created_at DESC`,
	)
	return posts, errors.Wrap(err, "querying all posts")
}
