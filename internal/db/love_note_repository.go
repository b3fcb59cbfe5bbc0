package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type LoveNoteRepository struct {
	database *gorm.DB
}

func NewLoveNoteRepository(database *gorm.DB) *LoveNoteRepository {
	return &LoveNoteRepository{database: database}
}

func (repo *LoveNoteRepository) Create(note *models.LoveNote) error {
	return repo.database.Create(note).Error
}

// ListReceived returns notes the partner sent to the reader, newest first.
// A user never sees their own notes in this list.
func (repo *LoveNoteRepository) ListReceived(coupleCode string, readerID string, limit int) ([]models.LoveNote, error) {
	notes := make([]models.LoveNote, 0)
	query := repo.database.
		Where("couple_code = ? AND sender_id <> ?", coupleCode, readerID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *LoveNoteRepository) ListUnread(coupleCode string, readerID string, limit int) ([]models.LoveNote, error) {
	notes := make([]models.LoveNote, 0)
	query := repo.database.
		Where("couple_code = ? AND sender_id <> ? AND is_read = ?", coupleCode, readerID, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *LoveNoteRepository) MarkRead(noteID string) error {
	result := repo.database.Model(&models.LoveNote{}).
		Where("id = ?", noteID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
