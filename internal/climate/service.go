package climate

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andreigec/koppen-climate-lookup/internal/config"
	"github.com/andreigec/koppen-climate-lookup/internal/koppen"
	"github.com/andreigec/koppen-climate-lookup/internal/metrics"
	"github.com/andreigec/koppen-climate-lookup/internal/timezone"
	"github.com/andreigec/koppen-climate-lookup/internal/types"

	"github.com/spf13/afero"
)

// Lookup finds the nearest reference point to a coordinate.
type Lookup interface {
	FindNearest(latitude, longitude, maxDistance float64) (*koppen.NearestPoint, error)
	Len() int
}

// Service classifies coordinates by climate.
type Service interface {
	// Classify returns the class of the nearest reference point within maxDistance km.
	// A nil maxDistance uses the configured default.
	Classify(latitude, longitude float64, maxDistance *float64) (*Classification, error)
	DatasetSize() int
}

type climateService struct {
	lookup             Lookup
	timezoneService    timezone.Service // nil when disabled
	defaultMaxDistance float64
	logger             *slog.Logger
}

// NewClimateService creates a climate service from configuration. The bundled
// dataset is served from the shared koppen instance unless dataset.path is set.
func NewClimateService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	lookup, err := openLookup(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("koppen dataset loaded",
		"path", datasetName(cfg.Dataset.Path),
		"points", lookup.Len(),
	)

	var tzSvc timezone.Service
	if cfg.App.TimezoneEnabled {
		tzSvc, err = timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
	}

	return NewClimateServiceWithProviders(lookup, tzSvc, cfg, logger), nil
}

// NewClimateServiceWithProviders creates a climate service with custom providers.
// A nil timezone service disables timezone resolution.
func NewClimateServiceWithProviders(
	lookup Lookup,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	metrics.DatasetPoints.Set(float64(lookup.Len()))

	return &climateService{
		lookup:             lookup,
		timezoneService:    timezoneService,
		defaultMaxDistance: cfg.App.DefaultMaxDistance,
		logger:             logger.With("component", "climate-service"),
	}
}

func openLookup(path string) (*koppen.Lookup, error) {
	if path == "" {
		return koppen.GetInstance()
	}
	return koppen.Open(afero.NewOsFs(), path)
}

func datasetName(path string) string {
	if path == "" {
		return "bundled:" + koppen.BundledPath
	}
	return path
}

func (s *climateService) DatasetSize() int {
	return s.lookup.Len()
}

// Classify looks up the nearest reference point, then attaches the class
// description and the timezone of the query point.
func (s *climateService) Classify(latitude, longitude float64, maxDistance *float64) (*Classification, error) {
	radius := s.defaultMaxDistance
	if maxDistance != nil {
		radius = *maxDistance
	}

	s.logger.Debug("classifying coordinates",
		"latitude", latitude,
		"longitude", longitude,
		"max_distance", radius,
	)

	start := time.Now()
	nearest, err := s.lookup.FindNearest(latitude, longitude, radius)
	metrics.LookupDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, koppen.ErrInvalidArgument) {
			metrics.LookupsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
			return nil, err
		}
		s.logger.Error("failed to find nearest point", "error", err)
		return nil, fmt.Errorf("failed to find nearest point: %w", err)
	}
	if nearest == nil {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMiss).Inc()
		s.logger.Debug("no reference point within radius",
			"latitude", latitude,
			"longitude", longitude,
			"max_distance", radius,
		)
		return nil, ErrNoClassification
	}

	metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMatch).Inc()
	metrics.MatchDistanceKm.Observe(nearest.Distance)

	class, ok := koppen.Describe(nearest.KoppenClass)
	if !ok {
		s.logger.Warn("reference point has an uncatalogued class", "koppen_class", nearest.KoppenClass)
		class = koppen.ClassInfo{Code: nearest.KoppenClass}
	}

	return &Classification{
		Query:       types.NewCoords(latitude, longitude),
		Nearest:     *nearest,
		Class:       class,
		Timezone:    s.resolveTimezone(latitude, longitude),
		MaxDistance: radius,
	}, nil
}

// resolveTimezone returns "" when disabled or when the finder has no answer.
func (s *climateService) resolveTimezone(latitude, longitude float64) string {
	if s.timezoneService == nil {
		return ""
	}

	tz, err := s.timezoneService.GetTimezone(latitude, longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return ""
	}
	return tz
}
