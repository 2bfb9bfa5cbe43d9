package spectrum

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/klauspost/pgzip"
)

// ReadCSV loads a curve from CSV with a header row. xCol and yCol name the
// columns; empty names select the first and second column.
func ReadCSV(r io.Reader, xCol, yCol string) (Curve, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return Curve{}, fmt.Errorf("spectrum: read csv: %w", df.Err)
	}

	names := df.Names()
	if xCol == "" || yCol == "" {
		if len(names) < 2 {
			return Curve{}, fmt.Errorf("%w: need two columns, have %d", ErrColumn, len(names))
		}
		if xCol == "" {
			xCol = names[0]
		}
		if yCol == "" {
			yCol = names[1]
		}
	}

	x, err := floatColumn(df, names, xCol)
	if err != nil {
		return Curve{}, err
	}
	y, err := floatColumn(df, names, yCol)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(x, y)
}

func floatColumn(df dataframe.DataFrame, names []string, name string) ([]float64, error) {
	if !slices.Contains(names, name) {
		return nil, fmt.Errorf("%w: %q not in [%s]", ErrColumn, name, strings.Join(names, ", "))
	}

	col := df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrColumn, name, col.Err)
	}

	values := col.Float()
	for i, v := range values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %q row %d is not numeric", ErrColumn, name, i+1)
		}
	}
	return values, nil
}

// Open opens path for reading, decompressing transparently when the name
// ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := pgzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("spectrum: gzip %s: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

type gzipFile struct {
	*pgzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// ReadFile loads a curve from a CSV file (see [ReadCSV] and [Open]).
func ReadFile(path, xCol, yCol string) (Curve, error) {
	rc, err := Open(path)
	if err != nil {
		return Curve{}, err
	}
	defer rc.Close()

	return ReadCSV(rc, xCol, yCol)
}
