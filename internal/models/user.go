package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// CoupleCodeLength is the length of the generated pairing code.
const CoupleCodeLength = 6

// CoupleCodeAlphabet deliberately matches what pairing codes have always
// looked like on the wire: uppercase letters and digits.
const CoupleCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type User struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Gender     string    `gorm:"not null" json:"gender"`
	CoupleCode string    `gorm:"index;not null" json:"couple_code"`
	PartnerID  string    `gorm:"index" json:"partner_id,omitempty"`
	PushToken  string    `json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (user *User) HasPartner() bool {
	return user.PartnerID != ""
}
