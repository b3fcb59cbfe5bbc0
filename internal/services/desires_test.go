package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/push"
	"github.com/stretchr/testify/require"
)

func newDesireService(t *testing.T) (*DesireService, string, string, string) {
	t.Helper()
	repos := newTestRepositories(t)
	owner, partner := registerCouple(t, repos)
	pusher := push.NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := NewDesireService(repos.Desires, repos.Users, pusher)
	return service, owner.CoupleCode, owner.ID, partner.ID
}

func TestDesiresMatchOnlyOverlap(t *testing.T) {
	service, code, ownerID, partnerID := newDesireService(t)
	ctx := context.Background()
	now := time.Now()

	result, err := service.Save(ctx, code, ownerID, []string{"roleplay", "outdoor", "toys"}, now)
	require.NoError(t, err)
	require.Empty(t, result.Matches)
	require.False(t, result.PartnerHasSelected)

	result, err = service.Save(ctx, code, partnerID, []string{"outdoor", "toys", "shower"}, now)
	require.NoError(t, err)
	require.Equal(t, []string{"outdoor", "toys"}, result.Matches)
	require.True(t, result.PartnerHasSelected)
}

func TestDesiresViewNeverRevealsPartnerList(t *testing.T) {
	service, code, ownerID, partnerID := newDesireService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := service.Save(ctx, code, partnerID, []string{"video", "mirror"}, now)
	require.NoError(t, err)

	view, err := service.View(code, ownerID)
	require.NoError(t, err)
	require.Empty(t, view.MyDesires)
	require.Empty(t, view.Matches)
	require.True(t, view.PartnerHasSelected, "owner only learns that the partner picked something")
}

func TestDesiresResaveReplacesSelection(t *testing.T) {
	service, code, ownerID, partnerID := newDesireService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := service.Save(ctx, code, partnerID, []string{"toys"}, now)
	require.NoError(t, err)
	_, err = service.Save(ctx, code, ownerID, []string{"toys"}, now)
	require.NoError(t, err)

	// Clearing the selection drops the match on both sides.
	result, err := service.Save(ctx, code, ownerID, nil, now)
	require.NoError(t, err)
	require.Empty(t, result.Matches)

	partnerView, err := service.View(code, partnerID)
	require.NoError(t, err)
	require.Empty(t, partnerView.Matches)
	require.False(t, partnerView.PartnerHasSelected)
}
