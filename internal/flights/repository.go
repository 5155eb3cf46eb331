package flights

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFlightNotFound = errors.New("flight not found")

type Repository interface {
	Create(ctx context.Context, flight *Flight) error
	GetByID(ctx context.Context, id uuid.UUID) (*Flight, error)
	List(ctx context.Context, filters SearchFilters) ([]Flight, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountOverlapping(ctx context.Context, planeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
	ListCities(ctx context.Context) (*CitiesResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, flight *Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	var flight Flight
	err := r.db.WithContext(ctx).Preload("Plane").Where("id = ?", id).First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &flight, nil
}

func (r *repository) List(ctx context.Context, filters SearchFilters) ([]Flight, error) {
	query := r.db.WithContext(ctx).Preload("Plane")

	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.Destination != "" {
		query = query.Where("destination = ?", filters.Destination)
	}
	if filters.Date != "" {
		day, err := time.Parse("2006-01-02", filters.Date)
		if err == nil {
			query = query.Where("departure_date >= ? AND departure_date < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var list []Flight
	if err := query.Order("departure_date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Flight{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlightNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Flight{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlightNotFound
	}
	return nil
}

// CountOverlapping counts flights on the same plane whose time window
// intersects [start, end). Used to keep one plane off two routes at once.
func (r *repository) CountOverlapping(ctx context.Context, planeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	query := r.db.WithContext(ctx).Model(&Flight{}).
		Where("plane_id = ?", planeID).
		Where("departure_date < ? AND (departure_date + (duration_minutes || ' minutes')::interval) > ?", end, start)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListCities(ctx context.Context) (*CitiesResponse, error) {
	var resp CitiesResponse

	err := r.db.WithContext(ctx).Model(&Flight{}).
		Distinct("source").Order("source").Pluck("source", &resp.Sources).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&Flight{}).
		Distinct("destination").Order("destination").Pluck("destination", &resp.Destinations).Error
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
