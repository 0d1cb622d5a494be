package ibadahtypes

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/constants"
	typeModel "ibadahku_backend/internals/features/ibadah/types/model"
)

//go:embed data_ibadah_types.json
var defaultTypesJSON []byte

type IbadahTypeSeed struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	TrackingType   string  `json:"tracking_type"`
	Frequency      string  `json:"frequency"`
	DaysOfWeek     []int64 `json:"days_of_week"`
	DefaultTarget  int     `json:"default_target"`
	Unit           *string `json:"unit"`
	Icon           *string `json:"icon"`
	SortOrder      int     `json:"sort_order"`
	IsRamadhanOnly bool    `json:"is_ramadhan_only"`
}

func (s IbadahTypeSeed) toModel() typeModel.IbadahTypeModel {
	target := s.DefaultTarget
	if target < 1 {
		target = 1
	}
	return typeModel.IbadahTypeModel{
		IbadahTypeCode:           s.Code,
		IbadahTypeName:           s.Name,
		IbadahTypeDescription:    s.Description,
		IbadahTypeTrackingType:   s.TrackingType,
		IbadahTypeFrequency:      s.Frequency,
		IbadahTypeScheduleType:   constants.ScheduleAlways,
		IbadahTypeDaysOfWeek:     pq.Int64Array(s.DaysOfWeek),
		IbadahTypeSpecificDates:  pq.StringArray{},
		IbadahTypeDefaultTarget:  target,
		IbadahTypeUnit:           s.Unit,
		IbadahTypeIcon:           s.Icon,
		IbadahTypeSortOrder:      s.SortOrder,
		IbadahTypeIsDefault:      true,
		IbadahTypeIsRamadhanOnly: s.IsRamadhanOnly,
		IbadahTypeIsActive:       true,
	}
}

func LoadDefaults() ([]IbadahTypeSeed, error) {
	var seeds []IbadahTypeSeed
	if err := json.Unmarshal(defaultTypesJSON, &seeds); err != nil {
		return nil, fmt.Errorf("decode data_ibadah_types.json: %w", err)
	}
	return seeds, nil
}

// SeedIbadahTypes insert jenis ibadah default; code yang sudah ada (termasuk yang soft-deleted) dilewati.
func SeedIbadahTypes(ctx context.Context, db *gorm.DB) (int, error) {
	seeds, err := LoadDefaults()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, seed := range seeds {
		var existing typeModel.IbadahTypeModel
		err := db.WithContext(ctx).Unscoped().
			Select("ibadah_type_id").
			Where("ibadah_type_code = ?", seed.Code).
			First(&existing).Error
		if err == nil {
			log.Debug().Str("code", seed.Code).Msg("[SEED] Jenis ibadah sudah ada, lewati")
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}

		m := seed.toModel()
		if err := db.WithContext(ctx).Create(&m).Error; err != nil {
			return inserted, fmt.Errorf("insert %s: %w", seed.Code, err)
		}
		inserted++
		log.Info().Str("code", seed.Code).Msg("[SEED] Jenis ibadah ditambahkan")
	}
	return inserted, nil
}
