package main

import (
	"image/png"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcluster/vectorfield"
)

// Output file names written by the vectorfield command.
const (
	divergenceFile = "divergence.csv"
	vorticityFile  = "vorticity.csv"
	colorCodeFile  = "colorcode.png"
)

func vectorfieldCmd(a *app) *cobra.Command {
	var (
		outDir string
		noData float64
	)

	cmd := &cobra.Command{
		Use:   "vectorfield VX_CSV VY_CSV",
		Short: "compute divergence, vorticity and a colour-coded image of a 2-D field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVectorField(args[0], args[1], outDir, noData)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for the output files")
	cmd.Flags().Float64Var(&noData, "no-data", vectorfield.DefaultNoData, "samples at or above this value are missing")

	return cmd
}

func (a *app) runVectorField(vxPath, vyPath, outDir string, noData float64) error {
	vx, err := a.loadComponent(vxPath, noData)
	if err != nil {
		return err
	}
	vy, err := a.loadComponent(vyPath, noData)
	if err != nil {
		return err
	}

	div, err := vectorfield.Divergence(vx, vy)
	if err != nil {
		return errors.Wrap(err, "divergence")
	}
	vort, err := vectorfield.Vorticity(vx, vy)
	if err != nil {
		return errors.Wrap(err, "vorticity")
	}
	img, err := vectorfield.ColorCode(vx, vy)
	if err != nil {
		return errors.Wrap(err, "color code")
	}

	if err := a.fs.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", outDir)
	}
	grids := []struct {
		name string
		m    *mat.Dense
	}{
		{divergenceFile, div},
		{vorticityFile, vort},
	}
	for _, g := range grids {
		if err := a.writeGrid(filepath.Join(outDir, g.name), g.m); err != nil {
			return err
		}
		lo, hi, _ := vectorfield.Range(g.m)
		a.log.Info("grid written", zap.String("file", g.name), zap.Float64("min", lo), zap.Float64("max", hi))
	}

	path := filepath.Join(outDir, colorCodeFile)
	f, err := a.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	a.log.Info("image written", zap.String("file", colorCodeFile))
	return f.Close()
}

// loadComponent reads one field component and fills its missing samples.
func (a *app) loadComponent(path string, noData float64) (*mat.Dense, error) {
	m, err := loadGrid(a.fs, path)
	if err != nil {
		return nil, err
	}
	n, err := vectorfield.FillMissing(m, noData)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	r, c := m.Dims()
	a.log.Info("component loaded", zap.String("path", path), zap.Int("rows", r), zap.Int("cols", c), zap.Int("filled", n))
	return m, nil
}

// writeGrid stores m as a headerless CSV.
func (a *app) writeGrid(path string, m *mat.Dense) error {
	f, err := a.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	w := gocsv.DefaultCSVWriter(f)
	r, c := m.Dims()
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "writing %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
