package api

import (
	"log/slog"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/llm"
	"github.com/coupletrack/bliss/internal/push"
	"github.com/coupletrack/bliss/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, model *llm.Client, logger *slog.Logger) *Handler {
	handler := &Handler{
		db:        database,
		secretKey: []byte(secretKey),
		rng:       services.NewSharedRand(time.Now().UnixNano()),
		logger:    logger,
		model:     model,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	pusher := push.NewClient(handler.logger)
	handler.pairingService = services.NewPairingService(handler.repositories.Users)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles, handler.repositories.Users)
	handler.wishlistService = services.NewWishlistService(handler.repositories.Wishlist, handler.repositories.Users)
	handler.desireService = services.NewDesireService(handler.repositories.Desires, handler.repositories.Users, pusher)
	handler.challengeService = services.NewChallengeService(handler.repositories.Challenges, handler.rng)
	handler.coachService = services.NewCoachService(handler.repositories.Intimacy, handler.repositories.Moods, handler.model, handler.logger)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
