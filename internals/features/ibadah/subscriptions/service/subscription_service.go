package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	subModel "ibadahku_backend/internals/features/ibadah/subscriptions/model"
	typeModel "ibadahku_backend/internals/features/ibadah/types/model"
)

// SubscriptionView langganan + metadata jenis ibadah.
type SubscriptionView struct {
	UserIbadahID           uuid.UUID `gorm:"column:user_ibadah_id" json:"user_ibadah_id"`
	UserIbadahIbadahTypeID uuid.UUID `gorm:"column:user_ibadah_ibadah_type_id" json:"user_ibadah_ibadah_type_id"`
	UserIbadahTargetCount  int       `gorm:"column:user_ibadah_target_count" json:"user_ibadah_target_count"`
	UserIbadahIsActive     bool      `gorm:"column:user_ibadah_is_active" json:"user_ibadah_is_active"`

	IbadahTypeCode           string  `gorm:"column:ibadah_type_code" json:"ibadah_type_code"`
	IbadahTypeName           string  `gorm:"column:ibadah_type_name" json:"ibadah_type_name"`
	IbadahTypeTrackingType   string  `gorm:"column:ibadah_type_tracking_type" json:"ibadah_type_tracking_type"`
	IbadahTypeFrequency      string  `gorm:"column:ibadah_type_frequency" json:"ibadah_type_frequency"`
	IbadahTypeUnit           *string `gorm:"column:ibadah_type_unit" json:"ibadah_type_unit,omitempty"`
	IbadahTypeIcon           *string `gorm:"column:ibadah_type_icon" json:"ibadah_type_icon,omitempty"`
	IbadahTypeIsRamadhanOnly bool    `gorm:"column:ibadah_type_is_ramadhan_only" json:"ibadah_type_is_ramadhan_only"`
}

// ListViews; active nil = semua.
func ListViews(ctx context.Context, db *gorm.DB, userID uuid.UUID, active *bool) ([]SubscriptionView, error) {
	q := db.WithContext(ctx).
		Table("user_ibadah AS ui").
		Select(`ui.user_ibadah_id, ui.user_ibadah_ibadah_type_id, ui.user_ibadah_target_count, ui.user_ibadah_is_active,
			t.ibadah_type_code, t.ibadah_type_name, t.ibadah_type_tracking_type, t.ibadah_type_frequency,
			t.ibadah_type_unit, t.ibadah_type_icon, t.ibadah_type_is_ramadhan_only`).
		Joins("JOIN ibadah_types t ON t.ibadah_type_id = ui.user_ibadah_ibadah_type_id AND t.ibadah_type_deleted_at IS NULL").
		Where("ui.user_ibadah_user_id = ?", userID)
	if active != nil {
		q = q.Where("ui.user_ibadah_is_active = ?", *active)
	}

	var rows []SubscriptionView
	err := q.Order("t.ibadah_type_sort_order ASC, t.ibadah_type_name ASC").Scan(&rows).Error
	return rows, err
}

// ActiveWithTypes langganan aktif beserta model jenisnya (untuk cek jadwal & visibilitas).
func ActiveWithTypes(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]subModel.UserIbadahModel, map[uuid.UUID]typeModel.IbadahTypeModel, error) {
	var subs []subModel.UserIbadahModel
	if err := db.WithContext(ctx).
		Where("user_ibadah_user_id = ? AND user_ibadah_is_active = ?", userID, true).
		Find(&subs).Error; err != nil {
		return nil, nil, err
	}
	types := map[uuid.UUID]typeModel.IbadahTypeModel{}
	if len(subs) == 0 {
		return subs, types, nil
	}

	ids := make([]uuid.UUID, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.UserIbadahIbadahTypeID)
	}
	var rows []typeModel.IbadahTypeModel
	if err := db.WithContext(ctx).
		Where("ibadah_type_id IN ?", ids).
		Order("ibadah_type_sort_order ASC, ibadah_type_name ASC").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	for _, t := range rows {
		types[t.IbadahTypeID] = t
	}
	return subs, types, nil
}

// FindActive langganan aktif user untuk satu jenis; nil kalau tidak berlangganan.
func FindActive(ctx context.Context, db *gorm.DB, userID, typeID uuid.UUID) (*subModel.UserIbadahModel, error) {
	var rows []subModel.UserIbadahModel
	if err := db.WithContext(ctx).
		Where("user_ibadah_user_id = ? AND user_ibadah_ibadah_type_id = ? AND user_ibadah_is_active = ?", userID, typeID, true).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Subscribe upsert (user, jenis): langganan lama diaktifkan lagi dengan target baru.
func Subscribe(ctx context.Context, db *gorm.DB, userID, typeID uuid.UUID, target int) (*subModel.UserIbadahModel, error) {
	row := subModel.UserIbadahModel{
		UserIbadahUserID:       userID,
		UserIbadahIbadahTypeID: typeID,
		UserIbadahTargetCount:  target,
		UserIbadahIsActive:     true,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_ibadah_user_id"}, {Name: "user_ibadah_ibadah_type_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"user_ibadah_target_count": target,
			"user_ibadah_is_active":    true,
			"user_ibadah_updated_at":   gorm.Expr("NOW()"),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SubscribeDefaults langganan awal user baru; yang sudah ada dibiarkan.
func SubscribeDefaults(ctx context.Context, db *gorm.DB, userID uuid.UUID, types []typeModel.IbadahTypeModel) error {
	if len(types) == 0 {
		return nil
	}
	rows := make([]subModel.UserIbadahModel, 0, len(types))
	for i := range types {
		rows = append(rows, subModel.UserIbadahModel{
			UserIbadahUserID:       userID,
			UserIbadahIbadahTypeID: types[i].IbadahTypeID,
			UserIbadahTargetCount:  types[i].EffectiveTarget(),
			UserIbadahIsActive:     true,
		})
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func GetOwned(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*subModel.UserIbadahModel, error) {
	var m subModel.UserIbadahModel
	if err := db.WithContext(ctx).
		Where("user_ibadah_id = ? AND user_ibadah_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
