package services

import (
	"strings"
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRegisterGeneratesCoupleCode(t *testing.T) {
	repos := newTestRepositories(t)
	pairing := NewPairingService(repos.Users)

	user, err := pairing.Register("Anna", models.GenderFemale, time.Now())
	require.NoError(t, err)
	require.Len(t, user.CoupleCode, models.CoupleCodeLength)
	for _, char := range user.CoupleCode {
		require.True(t, strings.ContainsRune(models.CoupleCodeAlphabet, char),
			"unexpected character %q in couple code", char)
	}
	require.False(t, user.HasPartner())
}

func TestJoinUnknownCode(t *testing.T) {
	repos := newTestRepositories(t)
	pairing := NewPairingService(repos.Users)

	user, err := pairing.Register("Anna", models.GenderFemale, time.Now())
	require.NoError(t, err)

	_, err = pairing.Join(user.ID, "ZZZZZZ")
	require.ErrorIs(t, err, ErrCoupleCodeNotFound)
}

func TestJoinOwnCode(t *testing.T) {
	repos := newTestRepositories(t)
	pairing := NewPairingService(repos.Users)

	user, err := pairing.Register("Anna", models.GenderFemale, time.Now())
	require.NoError(t, err)

	_, err = pairing.Join(user.ID, user.CoupleCode)
	require.ErrorIs(t, err, ErrSelfPairing)
}

func TestJoinLinksBothPartners(t *testing.T) {
	repos := newTestRepositories(t)
	owner, joining := registerCouple(t, repos)

	require.Equal(t, owner.CoupleCode, joining.CoupleCode)
	require.Equal(t, owner.ID, joining.PartnerID)
	require.Equal(t, joining.ID, owner.PartnerID)
}

func TestJoinRejectsThirdPartner(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)

	pairing := NewPairingService(repos.Users)
	third, err := pairing.Register("Marco", models.GenderMale, time.Now())
	require.NoError(t, err)

	_, err = pairing.Join(third.ID, owner.CoupleCode)
	require.ErrorIs(t, err, ErrCoupleOccupied)
}
