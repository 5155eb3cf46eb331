package flights

import (
	"context"
	"fmt"
	"time"

	"skybook/internal/planes"
	"skybook/pkg/cache"
	"skybook/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyFlight = "skybook:flights:"
	cacheKeyCities = "skybook:flights:cities"
	flightCacheTTL = 5 * time.Minute
)

type Service interface {
	CreateFlight(ctx context.Context, req *CreateFlightRequest) (*FlightResponse, error)
	GetFlight(ctx context.Context, id string) (*FlightResponse, error)
	ListFlights(ctx context.Context, filters SearchFilters) ([]FlightResponse, error)
	UpdateFlight(ctx context.Context, id string, req *UpdateFlightRequest) (*FlightResponse, error)
	DeleteFlight(ctx context.Context, id string) error
	ListCities(ctx context.Context) (*CitiesResponse, error)
}

type service struct {
	repo      Repository
	planeRepo planes.Repository
	cache     cache.Service
	logger    *logger.Logger
}

func NewService(repo Repository, planeRepo planes.Repository, cacheSvc cache.Service) Service {
	return &service{
		repo:      repo,
		planeRepo: planeRepo,
		cache:     cacheSvc,
		logger:    logger.GetDefault(),
	}
}

func (s *service) CreateFlight(ctx context.Context, req *CreateFlightRequest) (*FlightResponse, error) {
	planeID, err := uuid.Parse(req.PlaneID)
	if err != nil {
		return nil, fmt.Errorf("invalid plane ID: %w", err)
	}

	// Plane must exist before it can be scheduled
	if _, err := s.planeRepo.GetByID(ctx, planeID); err != nil {
		return nil, err
	}

	if req.Source == req.Destination {
		return nil, fmt.Errorf("source and destination must differ")
	}

	end := req.DepartureDate.Add(time.Duration(req.DurationMinutes) * time.Minute)
	overlapping, err := s.repo.CountOverlapping(ctx, planeID, req.DepartureDate, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check plane schedule: %w", err)
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("plane is already scheduled during this window")
	}

	flight := &Flight{
		Name:            req.Name,
		Source:          req.Source,
		SourceCode:      req.SourceCode,
		Destination:     req.Destination,
		DestinationCode: req.DestinationCode,
		DepartureDate:   req.DepartureDate,
		DurationMinutes: req.DurationMinutes,
		PlaneID:         planeID,
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.invalidateCache(ctx, flight.ID.String())

	resp := ToFlightResponse(flight)
	return &resp, nil
}

func (s *service) GetFlight(ctx context.Context, id string) (*FlightResponse, error) {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	var cached FlightResponse
	if err := s.cache.Get(ctx, cacheKeyFlight+id, &cached); err == nil {
		return &cached, nil
	}

	flight, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	resp := ToFlightResponse(flight)
	if err := s.cache.Set(ctx, cacheKeyFlight+id, resp, flightCacheTTL); err != nil {
		s.logger.Warn("failed to cache flight", "flight_id", id, "error", err)
	}
	return &resp, nil
}

func (s *service) ListFlights(ctx context.Context, filters SearchFilters) ([]FlightResponse, error) {
	list, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	responses := make([]FlightResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToFlightResponse(&list[i]))
	}
	return responses, nil
}

func (s *service) UpdateFlight(ctx context.Context, id string, req *UpdateFlightRequest) (*FlightResponse, error) {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Source != nil {
		updates["source"] = *req.Source
	}
	if req.SourceCode != nil {
		updates["source_code"] = *req.SourceCode
	}
	if req.Destination != nil {
		updates["destination"] = *req.Destination
	}
	if req.DestinationCode != nil {
		updates["destination_code"] = *req.DestinationCode
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}

	departure := existing.DepartureDate
	if req.DepartureDate != nil {
		departure = *req.DepartureDate
		updates["departure_date"] = *req.DepartureDate
	}
	duration := existing.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	planeID := existing.PlaneID
	if req.PlaneID != nil {
		planeID, err = uuid.Parse(*req.PlaneID)
		if err != nil {
			return nil, fmt.Errorf("invalid plane ID: %w", err)
		}
		if _, err := s.planeRepo.GetByID(ctx, planeID); err != nil {
			return nil, err
		}
		updates["plane_id"] = planeID
	}

	if req.DepartureDate != nil || req.DurationMinutes != nil || req.PlaneID != nil {
		end := departure.Add(time.Duration(duration) * time.Minute)
		overlapping, err := s.repo.CountOverlapping(ctx, planeID, departure, end, &flightID)
		if err != nil {
			return nil, fmt.Errorf("failed to check plane schedule: %w", err)
		}
		if overlapping > 0 {
			return nil, fmt.Errorf("plane is already scheduled during this window")
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, flightID, updates); err != nil {
			return nil, fmt.Errorf("failed to update flight: %w", err)
		}
		s.invalidateCache(ctx, id)
	}

	updated, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	resp := ToFlightResponse(updated)
	return &resp, nil
}

func (s *service) DeleteFlight(ctx context.Context, id string) error {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid flight ID: %w", err)
	}

	if err := s.repo.Delete(ctx, flightID); err != nil {
		return err
	}

	s.invalidateCache(ctx, id)
	return nil
}

func (s *service) ListCities(ctx context.Context) (*CitiesResponse, error) {
	var cached CitiesResponse
	if err := s.cache.Get(ctx, cacheKeyCities, &cached); err == nil {
		return &cached, nil
	}

	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKeyCities, cities, flightCacheTTL); err != nil {
		s.logger.Warn("failed to cache cities", "error", err)
	}
	return cities, nil
}

func (s *service) invalidateCache(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cacheKeyFlight+id); err != nil {
		s.logger.Warn("failed to invalidate flight cache", "flight_id", id, "error", err)
	}
	if err := s.cache.Delete(ctx, cacheKeyCities); err != nil {
		s.logger.Warn("failed to invalidate cities cache", "error", err)
	}
}
