package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushelper/backend/core/user"
)

func seedUser(t *testing.T, repo *userRepository, email, role string, createdAt, lastLogin time.Time) user.User {
	t.Helper()
	usr, err := repo.CreateUser(context.Background(), user.User{
		Email:     email,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		LastLogin: lastLogin,
	})
	require.NoError(t, err)
	return usr
}

func TestUserRepository_counts(t *testing.T) {
	repo := NewUserRepository(Open())
	ctx := context.Background()

	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	seedUser(t, repo, "s1@test.cd", user.RoleStudent, jan, now)
	seedUser(t, repo, "s2@test.cd", user.RoleStudent, mar, time.Time{})
	seedUser(t, repo, "sch@test.cd", user.RoleSchool, mar, now.Add(-30*24*time.Hour))
	seedUser(t, repo, "adm@test.cd", user.RoleAdmin, jan, time.Time{})

	students, err := repo.CountUsersByRole(ctx, user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, 2, students)

	schools, err := repo.CountUsersByRole(ctx, user.RoleSchool)
	require.NoError(t, err)
	assert.Equal(t, 1, schools)

	recent, err := repo.CountUsersLoggedInSince(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, recent, "only the fresh login counts; never-logged-in and stale logins do not")

	byMonth, err := repo.CountRegistrationsByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth, 2)
	// calendar order
	assert.Equal(t, user.MonthCount{Month: time.January, Count: 2}, byMonth[0])
	assert.Equal(t, user.MonthCount{Month: time.March, Count: 2}, byMonth[1])
}

func TestUserRepository_duplicateEmail(t *testing.T) {
	repo := NewUserRepository(Open())
	ctx := context.Background()

	seedUser(t, repo, "dup@test.cd", user.RoleStudent, time.Now().UTC(), time.Time{})

	_, err := repo.CreateUser(ctx, user.User{Email: "dup@test.cd", Role: user.RoleStudent})
	assert.Equal(t, user.ErrEmailExists, err)
}
