package planes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlaneNotFound = errors.New("plane not found")

// UsageStats aggregates flight and ticket counts for a plane.
type UsageStats struct {
	FlightCount int64
	TicketsSold int64
}

type Repository interface {
	Create(ctx context.Context, plane *Plane) error
	GetByID(ctx context.Context, id uuid.UUID) (*Plane, error)
	GetByName(ctx context.Context, name string) (*Plane, error)
	List(ctx context.Context) ([]Plane, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetUsageStats(ctx context.Context, id uuid.UUID) (*UsageStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, plane *Plane) error {
	return r.db.WithContext(ctx).Create(plane).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Plane, error) {
	var plane Plane
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plane).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaneNotFound
		}
		return nil, err
	}
	return &plane, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Plane, error) {
	var plane Plane
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&plane).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaneNotFound
		}
		return nil, err
	}
	return &plane, nil
}

func (r *repository) List(ctx context.Context) ([]Plane, error) {
	var list []Plane
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Plane{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaneNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Plane{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaneNotFound
	}
	return nil
}

// GetUsageStats counts flights scheduled on the plane and non-cancelled
// tickets across those flights. Raw table names avoid a package cycle
// with the flights and tickets packages.
func (r *repository) GetUsageStats(ctx context.Context, id uuid.UUID) (*UsageStats, error) {
	var stats UsageStats

	err := r.db.WithContext(ctx).
		Table("flights").
		Where("plane_id = ?", id).
		Count(&stats.FlightCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Table("tickets").
		Joins("JOIN flights ON flights.id = tickets.flight_id").
		Where("flights.plane_id = ? AND tickets.status <> 'CANCELLED'", id).
		Count(&stats.TicketsSold).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
