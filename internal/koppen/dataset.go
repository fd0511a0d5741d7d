package koppen

import (
	"bufio"
	"embed"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// BundledPath is the name of the reference dataset shipped with the package.
// The bundled file is a sample, not the global 0.5° grid: it covers the
// Antarctic and Greenland interiors and a set of city cells, so most land
// queries find nothing within the default radius. Serve the full grid by
// passing its path to Open (dataset.path in the service configuration).
const BundledPath = "koppen.csv"

//go:embed koppen.csv
var bundled embed.FS

// ReferencePoint is one row of the reference dataset.
type ReferencePoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	KoppenClass string  `json:"koppenClass"`
}

// Bundled returns a read-only filesystem holding the embedded dataset at BundledPath.
func Bundled() afero.Fs {
	return afero.FromIOFS{FS: bundled}
}

// LoadFile reads the dataset at path from fs.
// Any failure to open or read the file is returned as a *LoadError.
func LoadFile(fs afero.Fs, path string) ([]ReferencePoint, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(f)

	points, err := Load(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return points, nil
}

// Load parses a header row followed by "latitude,longitude,class" rows.
// Rows that are empty, short, or carry unparsable coordinates are skipped.
// Coordinates are not range checked. Only read errors are returned.
func Load(r io.Reader) ([]ReferencePoint, error) {
	var points []ReferencePoint

	// ReadString has no line length limit, unlike bufio.Scanner
	br := bufio.NewReader(r)
	header := true
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if header {
				header = false
			} else if point, ok := parseRow(line); ok {
				points = append(points, point)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

func parseRow(line string) (ReferencePoint, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ReferencePoint{}, false
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return ReferencePoint{}, false
	}

	latField := strings.TrimSpace(fields[0])
	lonField := strings.TrimSpace(fields[1])
	class := strings.TrimSpace(fields[2])
	if latField == "" || lonField == "" || class == "" {
		return ReferencePoint{}, false
	}

	lat, ok := parseCoordinate(latField)
	if !ok {
		return ReferencePoint{}, false
	}
	lon, ok := parseCoordinate(lonField)
	if !ok {
		return ReferencePoint{}, false
	}

	return ReferencePoint{
		Latitude:    lat,
		Longitude:   lon,
		KoppenClass: class,
	}, true
}

func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
