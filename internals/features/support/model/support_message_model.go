package model

import (
	"time"

	"github.com/google/uuid"
)

type SupportMessageModel struct {
	SupportMessageID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:support_message_id" json:"support_message_id"`
	SupportMessageUserID     uuid.UUID  `gorm:"type:uuid;not null;column:support_message_user_id;index:idx_support_message_user" json:"support_message_user_id"`
	SupportMessageSubject    string     `gorm:"type:varchar(150);not null;column:support_message_subject" json:"support_message_subject"`
	SupportMessageBody       string     `gorm:"type:text;not null;column:support_message_body" json:"support_message_body"`
	SupportMessageStatus     string     `gorm:"type:varchar(20);not null;default:'open';column:support_message_status;index:idx_support_message_status" json:"support_message_status"`
	SupportMessageAdminReply *string    `gorm:"type:text;column:support_message_admin_reply" json:"support_message_admin_reply,omitempty"`
	SupportMessageRepliedAt  *time.Time `gorm:"column:support_message_replied_at" json:"support_message_replied_at,omitempty"`
	SupportMessageRepliedBy  *uuid.UUID `gorm:"type:uuid;column:support_message_replied_by" json:"support_message_replied_by,omitempty"`

	SupportMessageCreatedAt time.Time `gorm:"column:support_message_created_at;autoCreateTime" json:"support_message_created_at"`
	SupportMessageUpdatedAt time.Time `gorm:"column:support_message_updated_at;autoUpdateTime" json:"support_message_updated_at"`
}

func (SupportMessageModel) TableName() string { return "support_messages" }
