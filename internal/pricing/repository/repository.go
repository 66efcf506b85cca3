// Package repository provides data access layer for the pricing module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	memberModel "github.com/nwssu/gymadmin/internal/member/model"
	"github.com/nwssu/gymadmin/internal/pricing/model"
)

// Repository defines the interface for pricing data access operations.
type Repository interface {
	// CurrentPrice returns the latest effective price for a member type and
	// plan. A combination with no pricing row yields 0 without error.
	CurrentPrice(ctx context.Context, memberType, planType string) (float64, error)

	// SetPrice installs a new price, recording the change in price history
	// when one already existed.
	SetPrice(ctx context.Context, memberType, planType string, price float64) error

	// SeedDefaults installs the standard rate card when the table is empty.
	SeedDefaults(ctx context.Context) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new pricing repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) CurrentPrice(ctx context.Context, memberType, planType string) (float64, error) {
	r.logger.Debugw("CurrentPrice called", "member_type", memberType, "plan_type", planType)

	var pricing model.GymPricing
	err := r.db.WithContext(ctx).
		Where("member_type = ? AND plan_type = ?", memberType, planType).
		Order("effective_date DESC, id DESC").
		First(&pricing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		r.logger.Errorw("CurrentPrice database error", "member_type", memberType, "error", err)
		return 0, err
	}

	return pricing.Price, nil
}

func (r *repository) SetPrice(ctx context.Context, memberType, planType string, price float64) error {
	r.logger.Infow("SetPrice called", "member_type", memberType, "plan_type", planType, "price", price)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.GymPricing
		err := tx.Where("member_type = ? AND plan_type = ?", memberType, planType).
			Order("effective_date DESC, id DESC").
			First(&current).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First price for this combination, nothing to archive.
		case err != nil:
			return err
		default:
			history := model.PriceHistory{
				MemberType: memberType,
				PlanType:   planType,
				OldPrice:   current.Price,
				NewPrice:   price,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		return tx.Create(&model.GymPricing{
			MemberType: memberType,
			PlanType:   planType,
			Price:      price,
		}).Error
	})
}

func (r *repository) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.GymPricing{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.GymPricing{
		{MemberType: memberModel.TypeStudent, PlanType: memberModel.PlanDaily, Price: 40},
		{MemberType: memberModel.TypeFaculty, PlanType: memberModel.PlanDaily, Price: 40},
		{MemberType: memberModel.TypeOutsider, PlanType: memberModel.PlanDaily, Price: 60},
		{MemberType: memberModel.TypeStudent, PlanType: memberModel.PlanMonthly, Price: 500},
		{MemberType: memberModel.TypeFaculty, PlanType: memberModel.PlanMonthly, Price: 500},
		{MemberType: memberModel.TypeOutsider, PlanType: memberModel.PlanMonthly, Price: 800},
	}

	if err := r.db.WithContext(ctx).Create(&defaults).Error; err != nil {
		r.logger.Errorw("SeedDefaults database error", "error", err)
		return err
	}

	r.logger.Infow("SeedDefaults completed", "count", len(defaults))
	return nil
}
