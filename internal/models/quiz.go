package models

import "time"

// QuizAnswer is keyed by (couple, user, question): answering again replaces.
type QuizAnswer struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CoupleCode  string    `gorm:"not null;uniqueIndex:uidx_quiz_couple_user_question" json:"couple_code"`
	UserID      string    `gorm:"not null;uniqueIndex:uidx_quiz_couple_user_question" json:"user_id"`
	QuestionID  int       `gorm:"not null;uniqueIndex:uidx_quiz_couple_user_question" json:"question_id"`
	AnswerIndex int       `gorm:"not null" json:"answer_index"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
