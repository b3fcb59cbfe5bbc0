package api

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/llm"
	"github.com/coupletrack/bliss/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	secretKey []byte
	rng       *rand.Rand
	logger    *slog.Logger
	model     *llm.Client

	repositories     *db.Repositories
	pairingService   *services.PairingService
	cycleService     *services.CycleService
	wishlistService  *services.WishlistService
	desireService    *services.DesireService
	challengeService *services.ChallengeService
	coachService     *services.CoachService
}

const contextUserKey = "currentUser"

// deviceTokenTTL is long on purpose: the app runs on a couple's phones and
// there is no refresh endpoint, re-registering would orphan the couple code.
const deviceTokenTTL = 365 * 24 * time.Hour
