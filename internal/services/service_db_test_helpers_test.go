package services

import (
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.OpenSQLiteInMemory()
	require.NoError(t, err)
	return database
}

func newTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()
	return db.NewRepositories(newTestDatabase(t))
}

// registerCouple creates two linked users sharing the first user's code.
func registerCouple(t *testing.T, repos *db.Repositories) (models.User, models.User) {
	t.Helper()
	pairing := NewPairingService(repos.Users)
	now := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

	owner, err := pairing.Register("Anna", models.GenderFemale, now)
	require.NoError(t, err)
	joining, err := pairing.Register("Luca", models.GenderMale, now)
	require.NoError(t, err)

	_, err = pairing.Join(joining.ID, owner.CoupleCode)
	require.NoError(t, err)

	owner, err = repos.Users.FindByID(owner.ID)
	require.NoError(t, err)
	joining, err = repos.Users.FindByID(joining.ID)
	require.NoError(t, err)
	return owner, joining
}
