package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

func TestUserCreateAndGetByEmail_NormalizesAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	u := &domain.User{Email: "  Anna@Example.COM ", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotZero(t, u.ID)
	assert.Equal(t, "anna@example.com", u.Email)

	got, err := repo.GetByEmail(context.Background(), "ANNA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	exists, err := repo.ExistsByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(context.Background(), &domain.User{Email: "anna@example.com", PasswordHash: "hash"}))

	exists, err = repo.ExistsByEmail(context.Background(), "  ANNA@example.com ")
	require.NoError(t, err)
	assert.True(t, exists)
}
