package climate

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/andreigec/koppen-climate-lookup/internal/config"
	"github.com/andreigec/koppen-climate-lookup/internal/koppen"
	"github.com/andreigec/koppen-climate-lookup/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Mock providers for testing

type mockTimezoneService struct {
	timezone string
	err      error
	calls    int
}

func (m *mockTimezoneService) GetTimezone(latitude, longitude float64) (string, error) {
	m.calls++
	return m.timezone, m.err
}

type failingLookup struct {
	err error
}

func (f *failingLookup) FindNearest(latitude, longitude, maxDistance float64) (*koppen.NearestPoint, error) {
	return nil, f.err
}

func (f *failingLookup) Len() int { return 0 }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{DefaultMaxDistance: 100}}
}

func testLookup() *koppen.Lookup {
	return koppen.NewLookup([]koppen.ReferencePoint{
		{Latitude: -89.75, Longitude: -179.75, KoppenClass: "EF"},
		{Latitude: 51.75, Longitude: -0.25, KoppenClass: "Cfb"},
		{Latitude: 39.25, Longitude: -106.75, KoppenClass: "Dfc"},
		{Latitude: 10, Longitude: 10, KoppenClass: "X9"},
	})
}

func float64Ptr(v float64) *float64 { return &v }

func TestClimateService_Classify(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		maxDistance *float64
		tz          *mockTimezoneService
		wantErr     error
		validate    func(*testing.T, *Classification)
	}{
		{
			name: "exact match with timezone",
			lat:  -89.75,
			lon:  -179.75,
			tz:   &mockTimezoneService{timezone: "Antarctica/McMurdo"},
			validate: func(t *testing.T, c *Classification) {
				if c.Nearest.KoppenClass != "EF" {
					t.Errorf("KoppenClass = %v, want EF", c.Nearest.KoppenClass)
				}
				if c.Nearest.Distance != 0 {
					t.Errorf("Distance = %v, want 0", c.Nearest.Distance)
				}
				if c.Class.Description != "Ice cap" || c.Class.Group != "Polar" {
					t.Errorf("Class = %+v, want Polar ice cap", c.Class)
				}
				if c.Timezone != "Antarctica/McMurdo" {
					t.Errorf("Timezone = %v, want Antarctica/McMurdo", c.Timezone)
				}
				if c.MaxDistance != 100 {
					t.Errorf("MaxDistance = %v, want default 100", c.MaxDistance)
				}
				if c.Query.Latitude != -89.75 || c.Query.Longitude != -179.75 {
					t.Errorf("Query = %+v, want (-89.75, -179.75)", c.Query)
				}
			},
		},
		{
			name:        "explicit radius",
			lat:         39.11539,
			lon:         -107.65840,
			maxDistance: float64Ptr(150),
			validate: func(t *testing.T, c *Classification) {
				if c.Nearest.KoppenClass != "Dfc" {
					t.Errorf("KoppenClass = %v, want Dfc", c.Nearest.KoppenClass)
				}
				if c.MaxDistance != 150 {
					t.Errorf("MaxDistance = %v, want 150", c.MaxDistance)
				}
				if c.Timezone != "" {
					t.Errorf("Timezone = %v, want empty when disabled", c.Timezone)
				}
			},
		},
		{
			name: "timezone failure is not fatal",
			lat:  51.5074,
			lon:  -0.1278,
			tz:   &mockTimezoneService{err: errors.New("no polygon")},
			validate: func(t *testing.T, c *Classification) {
				if c.Nearest.KoppenClass != "Cfb" {
					t.Errorf("KoppenClass = %v, want Cfb", c.Nearest.KoppenClass)
				}
				if c.Timezone != "" {
					t.Errorf("Timezone = %v, want empty", c.Timezone)
				}
			},
		},
		{
			name: "uncatalogued class keeps its code",
			lat:  10,
			lon:  10,
			validate: func(t *testing.T, c *Classification) {
				if c.Class.Code != "X9" || c.Class.Description != "" {
					t.Errorf("Class = %+v, want bare X9", c.Class)
				}
			},
		},
		{
			name:    "nothing within radius",
			lat:     0,
			lon:     0,
			wantErr: ErrNoClassification,
		},
		{
			name:    "invalid latitude passes through",
			lat:     91,
			lon:     0,
			wantErr: koppen.ErrInvalidLatitude,
		},
		{
			name:        "invalid radius passes through",
			lat:         0,
			lon:         0,
			maxDistance: float64Ptr(-1),
			wantErr:     koppen.ErrInvalidMaxDistance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc Service
			if tt.tz != nil {
				svc = NewClimateServiceWithProviders(testLookup(), tt.tz, testConfig(), testLogger())
			} else {
				svc = NewClimateServiceWithProviders(testLookup(), nil, testConfig(), testLogger())
			}

			got, err := svc.Classify(tt.lat, tt.lon, tt.maxDistance)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Classify() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Classify() = %+v, want nil", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Classify() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestClimateService_Classify_ValidationMessage(t *testing.T) {
	svc := NewClimateServiceWithProviders(testLookup(), nil, testConfig(), testLogger())

	_, err := svc.Classify(0, 181, nil)
	if err == nil || err.Error() != "Longitude must be between -180 and 180 degrees" {
		t.Errorf("Classify() error = %v, want exact longitude message", err)
	}
}

func TestClimateService_Classify_LookupFailure(t *testing.T) {
	svc := NewClimateServiceWithProviders(&failingLookup{err: errors.New("boom")}, nil, testConfig(), testLogger())

	_, err := svc.Classify(0, 0, nil)
	if err == nil {
		t.Fatal("Classify() expected error but got none")
	}
	if errors.Is(err, ErrNoClassification) || errors.Is(err, koppen.ErrInvalidArgument) {
		t.Errorf("Classify() error = %v, want an internal error", err)
	}
}

func TestClimateService_Metrics(t *testing.T) {
	svc := NewClimateServiceWithProviders(testLookup(), nil, testConfig(), testLogger())

	if got := testutil.ToFloat64(metrics.DatasetPoints); got != 4 {
		t.Errorf("DatasetPoints = %v, want 4", got)
	}

	match := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMatch))
	miss := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMiss))
	invalid := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeInvalid))

	_, _ = svc.Classify(51.75, -0.25, nil)
	_, _ = svc.Classify(0, 0, nil)
	_, _ = svc.Classify(-91, 0, nil)

	if got := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMatch)); got != match+1 {
		t.Errorf("match lookups = %v, want %v", got, match+1)
	}
	if got := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMiss)); got != miss+1 {
		t.Errorf("miss lookups = %v, want %v", got, miss+1)
	}
	if got := testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(metrics.OutcomeInvalid)); got != invalid+1 {
		t.Errorf("invalid lookups = %v, want %v", got, invalid+1)
	}
}

func TestNewClimateService_DatasetPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "koppen.csv")
	if err := os.WriteFile(path, []byte("lat,lon,class\n1.25,103.75,Af\n"), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	cfg := testConfig()
	cfg.Dataset.Path = path

	svc, err := NewClimateService(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewClimateService() unexpected error = %v", err)
	}
	if svc.DatasetSize() != 1 {
		t.Errorf("DatasetSize() = %v, want 1", svc.DatasetSize())
	}

	got, err := svc.Classify(1.3521, 103.8198, nil)
	if err != nil {
		t.Fatalf("Classify() unexpected error = %v", err)
	}
	if got.Class.Description != "Tropical rainforest" {
		t.Errorf("Class = %+v, want Tropical rainforest", got.Class)
	}
}

func TestNewClimateService_MissingDataset(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewClimateService(cfg, testLogger())
	var loadErr *koppen.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("NewClimateService() error = %v, want *koppen.LoadError", err)
	}
}

func TestNewClimateService_Bundled(t *testing.T) {
	svc, err := NewClimateService(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewClimateService() unexpected error = %v", err)
	}

	shared, err := koppen.GetInstance()
	if err != nil {
		t.Fatalf("GetInstance() unexpected error = %v", err)
	}
	if svc.DatasetSize() != shared.Len() {
		t.Errorf("DatasetSize() = %v, want %v", svc.DatasetSize(), shared.Len())
	}
}
