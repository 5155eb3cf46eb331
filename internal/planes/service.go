package planes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skybook/pkg/cache"
	"skybook/pkg/logger"

	"github.com/google/uuid"
)

const (
	cacheKeyPlaneList = "skybook:planes:list"
	cacheKeyPlane     = "skybook:planes:"
	planeCacheTTL     = 10 * time.Minute
)

var validPlaneTypes = map[string]bool{
	"JET":       true,
	"PROPELLER": true,
	"WIDEBODY":  true,
}

type Service interface {
	CreatePlane(ctx context.Context, req *CreatePlaneRequest) (*PlaneResponse, error)
	GetPlane(ctx context.Context, id string) (*PlaneResponse, error)
	ListPlanes(ctx context.Context) ([]PlaneResponse, error)
	UpdatePlane(ctx context.Context, id string, req *UpdatePlaneRequest) (*PlaneResponse, error)
	DeletePlane(ctx context.Context, id string) error
	GetPlaneReport(ctx context.Context, id string) (*PlaneReportResponse, error)
}

type service struct {
	repo   Repository
	cache  cache.Service
	logger *logger.Logger
}

func NewService(repo Repository, cacheSvc cache.Service) Service {
	return &service{
		repo:   repo,
		cache:  cacheSvc,
		logger: logger.GetDefault(),
	}
}

func (s *service) CreatePlane(ctx context.Context, req *CreatePlaneRequest) (*PlaneResponse, error) {
	if !validPlaneTypes[req.Type] {
		return nil, fmt.Errorf("invalid plane type: %s", req.Type)
	}
	if req.NEconomySeats+req.NBusinessSeats+req.NFirstClassSeats == 0 {
		return nil, fmt.Errorf("plane must have at least one seat")
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrPlaneNotFound) {
		return nil, fmt.Errorf("failed to check plane name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("plane with name '%s' already exists", req.Name)
	}

	plane := &Plane{
		Name:             req.Name,
		Type:             req.Type,
		NEconomySeats:    req.NEconomySeats,
		NBusinessSeats:   req.NBusinessSeats,
		NFirstClassSeats: req.NFirstClassSeats,
		LastMaintenance:  req.LastMaintenance,
		NextMaintenance:  req.NextMaintenance,
	}

	if err := s.repo.Create(ctx, plane); err != nil {
		return nil, fmt.Errorf("failed to create plane: %w", err)
	}

	s.invalidateCache(ctx, plane.ID.String())

	resp := ToPlaneResponse(plane)
	return &resp, nil
}

func (s *service) GetPlane(ctx context.Context, id string) (*PlaneResponse, error) {
	planeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid plane ID: %w", err)
	}

	var cached PlaneResponse
	if err := s.cache.Get(ctx, cacheKeyPlane+id, &cached); err == nil {
		return &cached, nil
	}

	plane, err := s.repo.GetByID(ctx, planeID)
	if err != nil {
		return nil, err
	}

	resp := ToPlaneResponse(plane)
	if err := s.cache.Set(ctx, cacheKeyPlane+id, resp, planeCacheTTL); err != nil {
		s.logger.Warn("failed to cache plane", "plane_id", id, "error", err)
	}
	return &resp, nil
}

func (s *service) ListPlanes(ctx context.Context) ([]PlaneResponse, error) {
	var cached []PlaneResponse
	if err := s.cache.Get(ctx, cacheKeyPlaneList, &cached); err == nil {
		return cached, nil
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planes: %w", err)
	}

	responses := make([]PlaneResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToPlaneResponse(&list[i]))
	}

	if err := s.cache.Set(ctx, cacheKeyPlaneList, responses, planeCacheTTL); err != nil {
		s.logger.Warn("failed to cache plane list", "error", err)
	}
	return responses, nil
}

func (s *service) UpdatePlane(ctx context.Context, id string, req *UpdatePlaneRequest) (*PlaneResponse, error) {
	planeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid plane ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, planeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil && *req.Name != existing.Name {
		nameExists, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, ErrPlaneNotFound) {
			return nil, fmt.Errorf("failed to check plane name: %w", err)
		}
		if nameExists != nil {
			return nil, fmt.Errorf("plane with name '%s' already exists", *req.Name)
		}
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		if !validPlaneTypes[*req.Type] {
			return nil, fmt.Errorf("invalid plane type: %s", *req.Type)
		}
		updates["type"] = *req.Type
	}
	if req.NEconomySeats != nil {
		updates["n_economy_seats"] = *req.NEconomySeats
	}
	if req.NBusinessSeats != nil {
		updates["n_business_seats"] = *req.NBusinessSeats
	}
	if req.NFirstClassSeats != nil {
		updates["n_first_class_seats"] = *req.NFirstClassSeats
	}
	if req.LastMaintenance != nil {
		updates["last_maintenance"] = *req.LastMaintenance
	}
	if req.NextMaintenance != nil {
		updates["next_maintenance"] = *req.NextMaintenance
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, planeID, updates); err != nil {
			return nil, fmt.Errorf("failed to update plane: %w", err)
		}
		s.invalidateCache(ctx, id)
	}

	updated, err := s.repo.GetByID(ctx, planeID)
	if err != nil {
		return nil, err
	}
	resp := ToPlaneResponse(updated)
	return &resp, nil
}

func (s *service) DeletePlane(ctx context.Context, id string) error {
	planeID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid plane ID: %w", err)
	}

	if err := s.repo.Delete(ctx, planeID); err != nil {
		return err
	}

	s.invalidateCache(ctx, id)
	return nil
}

func (s *service) GetPlaneReport(ctx context.Context, id string) (*PlaneReportResponse, error) {
	planeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid plane ID: %w", err)
	}

	plane, err := s.repo.GetByID(ctx, planeID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetUsageStats(ctx, planeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	seatsOffered := int64(plane.TotalSeats()) * stats.FlightCount
	occupancy := 0.0
	if seatsOffered > 0 {
		occupancy = float64(stats.TicketsSold) / float64(seatsOffered)
	}

	return &PlaneReportResponse{
		Plane:         ToPlaneResponse(plane),
		FlightCount:   stats.FlightCount,
		TicketsSold:   stats.TicketsSold,
		SeatsOffered:  seatsOffered,
		OccupancyRate: occupancy,
	}, nil
}

func (s *service) invalidateCache(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cacheKeyPlaneList); err != nil {
		s.logger.Warn("failed to invalidate plane list cache", "error", err)
	}
	if err := s.cache.Delete(ctx, cacheKeyPlane+id); err != nil {
		s.logger.Warn("failed to invalidate plane cache", "plane_id", id, "error", err)
	}
}
