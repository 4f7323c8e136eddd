package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcluster/kmedoids"
)

// readRecords reads every CSV record of path.
func readRecords(fs afero.Fs, path string) ([][]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var (
		r       = gocsv.LazyCSVReader(f)
		records [][]string
	)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s: no rows", path)
	}
	return records, nil
}

// loadDataset reads a headered CSV and keeps the named columns, in the
// given order; with no names every column is kept. Cells must be numeric.
// It returns the dataset and the column names used.
func loadDataset(fs afero.Fs, path string, columns []string) (*kmedoids.Dataset, []string, error) {
	records, err := readRecords(fs, path)
	if err != nil {
		return nil, nil, err
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	idx, names, err := selectColumns(header, columns)
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}

	points := make([][]float64, 0, len(records)-1)
	for row, rec := range records[1:] {
		p := make([]float64, len(idx))
		for k, col := range idx {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "%s: row %d column %q", path, row+2, names[k])
			}
			p[k] = v
		}
		points = append(points, p)
	}

	ds, err := kmedoids.NewDataset(points)
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	return ds, names, nil
}

// selectColumns maps wanted column names to header positions.
func selectColumns(header, wanted []string) ([]int, []string, error) {
	if len(wanted) == 0 {
		idx := make([]int, len(header))
		for i := range idx {
			idx[i] = i
		}
		return idx, header, nil
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	idx := make([]int, len(wanted))
	for k, name := range wanted {
		i, ok := pos[name]
		if !ok {
			return nil, nil, errors.Errorf("unknown column %q", name)
		}
		idx[k] = i
	}
	return idx, wanted, nil
}

// loadGrid reads a headerless numeric CSV into a matrix.
func loadGrid(fs afero.Fs, path string) (*mat.Dense, error) {
	records, err := readRecords(fs, path)
	if err != nil {
		return nil, err
	}
	var (
		r    = len(records)
		c    = len(records[0])
		data = make([]float64, 0, r*c)
	)
	if c == 0 {
		return nil, errors.Errorf("%s: empty first row", path)
	}
	for i, rec := range records {
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: row %d column %d", path, i+1, j+1)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(r, c, data), nil
}
