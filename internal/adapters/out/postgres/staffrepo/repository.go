// Package staffrepo stores the staff directory: who may act and with which
// role.
package staffrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaffDTO is the staff table row.
type StaffDTO struct {
	Username string `gorm:"primaryKey"`
	Role     string `gorm:"type:varchar(16);not null"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

// GormStaffDirectory implements ports.StaffDirectory using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// Resolve returns the actor for username. Unknown names are not authorized
// to do anything.
func (r *GormStaffDirectory) Resolve(ctx context.Context, username string) (kernel.Actor, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError("actor")
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Actor{}, errs.NewNotAuthorizedErrorWithCause(name, "act", errors.New("unknown staff member"))
		}
		return kernel.Actor{}, err
	}

	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(dto.Username, role)
}

// Upsert creates the staff record or changes its role.
func (r *GormStaffDirectory) Upsert(ctx context.Context, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	dto := StaffDTO{Username: actor.Username(), Role: actor.Role().String()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(&dto).Error
}
