package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	supportModel "ibadahku_backend/internals/features/support/model"
	helper "ibadahku_backend/internals/helpers"
)

// AdminSupportView tiket + identitas pengirim.
type AdminSupportView struct {
	supportModel.SupportMessageModel
	UserEmail    string `gorm:"column:user_email" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name" json:"user_full_name"`
}

func Create(ctx context.Context, db *gorm.DB, userID uuid.UUID, subject, body string) (*supportModel.SupportMessageModel, error) {
	m := supportModel.SupportMessageModel{
		SupportMessageUserID:  userID,
		SupportMessageSubject: subject,
		SupportMessageBody:    body,
		SupportMessageStatus:  constants.SupportOpen,
	}
	if err := db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func ListForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, p helper.Paging) ([]supportModel.SupportMessageModel, int64, error) {
	q := db.WithContext(ctx).Model(&supportModel.SupportMessageModel{}).
		Where("support_message_user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []supportModel.SupportMessageModel{}
	err := q.Order("support_message_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error
	return rows, total, err
}

// GetOwned gorm.ErrRecordNotFound juga untuk tiket milik user lain.
func GetOwned(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*supportModel.SupportMessageModel, error) {
	var m supportModel.SupportMessageModel
	if err := db.WithContext(ctx).
		Where("support_message_id = ? AND support_message_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// AdminList semua tiket; status kosong = semua.
func AdminList(ctx context.Context, db *gorm.DB, status string, p helper.Paging) ([]AdminSupportView, int64, error) {
	q := db.WithContext(ctx).Table("support_messages AS s").
		Joins("LEFT JOIN profiles u ON u.id = s.support_message_user_id")
	if status != "" {
		q = q.Where("s.support_message_status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []AdminSupportView{}
	err := q.Select("s.*, COALESCE(u.email, '') AS user_email, COALESCE(u.full_name, '') AS user_full_name").
		Order("s.support_message_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	return rows, total, err
}

func GetByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*supportModel.SupportMessageModel, error) {
	var m supportModel.SupportMessageModel
	if err := db.WithContext(ctx).Where("support_message_id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Reply isi balasan admin; status default resolved.
func Reply(ctx context.Context, db *gorm.DB, m *supportModel.SupportMessageModel, reply, status string, adminID uuid.UUID) error {
	if status == "" {
		status = constants.SupportResolved
	}
	now := time.Now()
	updates := map[string]any{
		"support_message_admin_reply": reply,
		"support_message_status":      status,
		"support_message_replied_at":  now,
		"support_message_replied_by":  adminID,
	}
	if err := db.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return err
	}
	m.SupportMessageAdminReply = &reply
	m.SupportMessageStatus = status
	m.SupportMessageRepliedAt = &now
	m.SupportMessageRepliedBy = &adminID
	return nil
}

func SetStatus(ctx context.Context, db *gorm.DB, m *supportModel.SupportMessageModel, status string) error {
	if err := db.WithContext(ctx).Model(m).Update("support_message_status", status).Error; err != nil {
		return err
	}
	m.SupportMessageStatus = status
	return nil
}

func CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&supportModel.SupportMessageModel{}).
		Where("support_message_status = ?", status).
		Count(&n).Error
	return n, err
}
