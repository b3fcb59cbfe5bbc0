package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Intimacy     *IntimacyRepository
	Moods        *MoodRepository
	Cycles       *CycleRepository
	Wishlist     *WishlistRepository
	Desires      *DesireRepository
	Challenges   *ChallengeRepository
	Quiz         *QuizRepository
	SpecialDates *SpecialDateRepository
	LoveNotes    *LoveNoteRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Intimacy:     NewIntimacyRepository(database),
		Moods:        NewMoodRepository(database),
		Cycles:       NewCycleRepository(database),
		Wishlist:     NewWishlistRepository(database),
		Desires:      NewDesireRepository(database),
		Challenges:   NewChallengeRepository(database),
		Quiz:         NewQuizRepository(database),
		SpecialDates: NewSpecialDateRepository(database),
		LoveNotes:    NewLoveNoteRepository(database),
	}
}
