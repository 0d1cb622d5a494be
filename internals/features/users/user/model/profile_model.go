package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel = tabel profiles (1 baris per akun)
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex:uq_profiles_email;not null" json:"email"`
	FullName  string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Password  *string   `gorm:"column:password" json:"-"`
	GoogleID  *string   `gorm:"column:google_id;size:255;uniqueIndex:uq_profiles_google_id" json:"google_id,omitempty"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// HasPassword false untuk akun yang hanya login via Google.
func (p *ProfileModel) HasPassword() bool {
	return p.Password != nil && *p.Password != ""
}
