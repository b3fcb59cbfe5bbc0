package services

import (
	"context"
	"errors"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/push"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DesireService struct {
	desires *db.DesireRepository
	users   *db.UserRepository
	pusher  *push.Client
}

func NewDesireService(desires *db.DesireRepository, users *db.UserRepository, pusher *push.Client) *DesireService {
	return &DesireService{desires: desires, users: users, pusher: pusher}
}

type DesireView struct {
	MyDesires          []string `json:"my_desires"`
	Matches            []string `json:"matches"`
	PartnerHasSelected bool     `json:"partner_has_selected"`
}

type DesireSaveResult struct {
	Matches            []string `json:"matches"`
	PartnerHasSelected bool     `json:"partner_has_selected"`
}

// Save replaces the user's selection and recomputes matches against the
// partner's. The partner gets a push nudge, but delivery is best effort and
// never fails the save.
func (service *DesireService) Save(ctx context.Context, coupleCode string, userID string, desires []string, now time.Time) (DesireSaveResult, error) {
	if desires == nil {
		desires = []string{}
	}
	record := models.SecretDesire{
		ID:         uuid.NewString(),
		CoupleCode: coupleCode,
		UserID:     userID,
		Desires:    desires,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := service.desires.Save(&record); err != nil {
		return DesireSaveResult{}, err
	}

	partnerDesires, partnerHasSelected, err := service.partnerDesires(coupleCode, userID)
	if err != nil {
		return DesireSaveResult{}, err
	}

	service.notifyPartner(ctx, userID)

	return DesireSaveResult{
		Matches:            intersect(desires, partnerDesires),
		PartnerHasSelected: partnerHasSelected,
	}, nil
}

// View returns the user's selection and the overlap with the partner's.
// Only the overlap is ever revealed, never the partner's full list.
func (service *DesireService) View(coupleCode string, userID string) (DesireView, error) {
	myDesires := []string{}
	record, err := service.desires.FindByUser(coupleCode, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DesireView{}, err
	}
	if err == nil && record.Desires != nil {
		myDesires = record.Desires
	}

	partnerDesires, partnerHasSelected, err := service.partnerDesires(coupleCode, userID)
	if err != nil {
		return DesireView{}, err
	}

	return DesireView{
		MyDesires:          myDesires,
		Matches:            intersect(myDesires, partnerDesires),
		PartnerHasSelected: partnerHasSelected,
	}, nil
}

func (service *DesireService) partnerDesires(coupleCode string, userID string) ([]string, bool, error) {
	records, err := service.desires.ListByCouple(coupleCode)
	if err != nil {
		return nil, false, err
	}
	for _, record := range records {
		if record.UserID != userID {
			return record.Desires, len(record.Desires) > 0, nil
		}
	}
	return nil, false, nil
}

func (service *DesireService) notifyPartner(ctx context.Context, userID string) {
	user, err := service.users.FindByID(userID)
	if err != nil || !user.HasPartner() {
		return
	}
	partner, err := service.users.FindPartner(user)
	if err != nil {
		return
	}
	service.pusher.Notify(ctx, partner.PushToken,
		"💭 Desideri Segreti",
		"Il tuo partner ha aggiornato le sue scelte! Vai a vedere se avete nuovi match 😏",
		map[string]any{"type": "desire_update"},
	)
}

func intersect(mine []string, theirs []string) []string {
	matches := []string{}
	if len(mine) == 0 || len(theirs) == 0 {
		return matches
	}
	theirSet := make(map[string]bool, len(theirs))
	for _, desire := range theirs {
		theirSet[desire] = true
	}
	for _, desire := range mine {
		if theirSet[desire] {
			matches = append(matches, desire)
		}
	}
	return matches
}
