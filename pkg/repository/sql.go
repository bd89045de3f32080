package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BeerStyles/pkg/model"
)

// SQLRepository stores styles in a relational table. Names are not unique; the row with
// the highest id is the most recently created one.
type SQLRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

type styleRow struct {
	ID                  uint `gorm:"primaryKey"`
	CreatedAt           time.Time
	Name                string  `gorm:"column:name;index;not null"`
	ABVLow              float64 `gorm:"column:abv_low"`
	ABVHigh             float64 `gorm:"column:abv_high"`
	IBULow              int64   `gorm:"column:ibu_low"`
	IBUHigh             int64   `gorm:"column:ibu_high"`
	SRMLow              float64 `gorm:"column:srm_low"`
	SRMHigh             float64 `gorm:"column:srm_high"`
	OriginalGravityLow  float64 `gorm:"column:original_gravity_low"`
	OriginalGravityHigh float64 `gorm:"column:original_gravity_high"`
	FinalGravityLow     float64 `gorm:"column:final_gravity_low"`
	FinalGravityHigh    float64 `gorm:"column:final_gravity_high"`
}

func (styleRow) TableName() string {
	return "styles"
}

func newStyleRow(style model.Style) styleRow {
	return styleRow{
		Name:                style.Name,
		ABVLow:              style.ABVLow,
		ABVHigh:             style.ABVHigh,
		IBULow:              style.IBULow,
		IBUHigh:             style.IBUHigh,
		SRMLow:              style.SRMLow,
		SRMHigh:             style.SRMHigh,
		OriginalGravityLow:  style.OriginalGravityLow,
		OriginalGravityHigh: style.OriginalGravityHigh,
		FinalGravityLow:     style.FinalGravityLow,
		FinalGravityHigh:    style.FinalGravityHigh,
	}
}

func (row styleRow) toModel() *model.Style {
	return &model.Style{
		Name:                row.Name,
		ABVLow:              row.ABVLow,
		ABVHigh:             row.ABVHigh,
		IBULow:              row.IBULow,
		IBUHigh:             row.IBUHigh,
		SRMLow:              row.SRMLow,
		SRMHigh:             row.SRMHigh,
		OriginalGravityLow:  row.OriginalGravityLow,
		OriginalGravityHigh: row.OriginalGravityHigh,
		FinalGravityLow:     row.FinalGravityLow,
		FinalGravityHigh:    row.FinalGravityHigh,
	}
}

func (r *SQLRepository) CreateStyle(ctx context.Context, style model.Style) (string, error) {
	if err := style.Validate(); err != nil {
		return "", err
	}

	row := newStyleRow(style)
	if result := r.DB.WithContext(ctx).Create(&row); result.Error != nil {
		r.Logger.Error("error creating style", zap.String("name", style.Name), zap.Error(result.Error))

		return "", fmt.Errorf("%w: %w", ErrExecution, result.Error)
	}

	return style.Name, nil
}

func (r *SQLRepository) ReadStyle(ctx context.Context, name string) (*model.Style, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	var row styleRow

	result := r.DB.WithContext(ctx).Where("name = ?", name).Last(&row)
	if result.Error != nil {
		return nil, r.queryError(result.Error, name)
	}

	return row.toModel(), nil
}

func (r *SQLRepository) UpdateStyle(ctx context.Context, style model.Style) (*model.Style, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	var row styleRow

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&styleRow{}).Where("name = ?", style.Name).Updates(map[string]any{
			"abv_low":               style.ABVLow,
			"abv_high":              style.ABVHigh,
			"ibu_low":               style.IBULow,
			"ibu_high":              style.IBUHigh,
			"srm_low":               style.SRMLow,
			"srm_high":              style.SRMHigh,
			"original_gravity_low":  style.OriginalGravityLow,
			"original_gravity_high": style.OriginalGravityHigh,
			"final_gravity_low":     style.FinalGravityLow,
			"final_gravity_high":    style.FinalGravityHigh,
		})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			created := newStyleRow(style)
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
		}

		return tx.Where("name = ?", style.Name).Last(&row).Error
	})
	if err != nil {
		return nil, r.queryError(err, style.Name)
	}

	return row.toModel(), nil
}

func (r *SQLRepository) DeleteStyle(ctx context.Context, name string) (bool, error) {
	if err := model.ValidateName(name); err != nil {
		return false, err
	}

	result := r.DB.WithContext(ctx).Where("name = ?", name).Delete(&styleRow{})
	if result.Error != nil {
		return false, r.queryError(result.Error, name)
	}

	return result.RowsAffected > 0, nil
}

func (r *SQLRepository) queryError(err error, name string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrStyleNotFound, name)
	}

	r.Logger.Error("error querying styles", zap.String("name", name), zap.Error(err))

	return fmt.Errorf("%w: %w", ErrExecution, err)
}
