package model

import "time"

type TokenBlacklistModel struct {
	ID        uint      `gorm:"column:token_blacklist_id;primaryKey" json:"id"`
	Token     string    `gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:uq_token_blacklist_token" json:"-"`
	ExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;type:timestamptz;not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:token_blacklist_created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
