package scan

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

const readBatch = 1024

// WriteParquet writes rows as a Parquet file to w.
func WriteParquet(w io.Writer, rows []Row) error {
	pw := parquet.NewGenericWriter[Row](w)
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("scan: write parquet: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("scan: close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet reads rows written by [WriteParquet].
func ReadParquet(r io.ReaderAt, size int64) ([]Row, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("scan: open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	rows := make([]Row, 0, pf.NumRows())
	buf := make([]Row, readBatch)
	for {
		n, err := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan: read parquet: %w", err)
		}
	}
	return rows, nil
}
