package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campushelper/backend/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.t))
	for _, u := range repo.db.t {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users
}

// CreateUser holds the write lock for the whole uniqueness-check-then-insert
// so concurrent duplicate signups cannot both succeed.
func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, u := range repo.db.t {
		if u.Email == usr.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	repo.db.t[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) GetUser(_ context.Context, filter user.GetFilter) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if filter.ID != "" {
		if usr, ok := repo.db.t[filter.ID]; ok {
			return *usr, nil
		}
		return user.User{}, user.ErrNotFound
	}
	if filter.Email != "" {
		for _, usr := range repo.db.t {
			if usr.Email == filter.Email {
				return *usr, nil
			}
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) CountUsersByRole(_ context.Context, role string) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var count int
	for _, usr := range repo.db.t {
		if usr.Role == role {
			count++
		}
	}
	return count, nil
}

func (repo *userRepository) CountUsersLoggedInSince(_ context.Context, t time.Time) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var count int
	for _, usr := range repo.db.t {
		if !usr.LastLogin.IsZero() && !usr.LastLogin.Before(t) {
			count++
		}
	}
	return count, nil
}

func (repo *userRepository) CountRegistrationsByMonth(_ context.Context) ([]user.MonthCount, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	byMonth := make(map[time.Month]int)
	for _, usr := range repo.db.t {
		byMonth[usr.CreatedAt.Month()]++
	}
	counts := make([]user.MonthCount, 0, len(byMonth))
	for m := time.January; m <= time.December; m++ {
		if count, ok := byMonth[m]; ok {
			counts = append(counts, user.MonthCount{Month: m, Count: count})
		}
	}
	return counts, nil
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[usr.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	repo.db.t[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) DeleteUsersByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.t, id)
	}
	return nil
}
