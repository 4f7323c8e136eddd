// Command lvcluster runs k-medoids clustering and vector-field analysis on
// CSV inputs.
//
//	lvcluster kmedoids iris.csv --columns sepal_length,sepal_width,petal_length,petal_width
//	lvcluster kmedoids iris.csv --random --seed 7 --out labels.csv --summary
//	lvcluster vectorfield uf24.csv vf24.csv --out-dir out/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the collaborators shared by all sub-commands.
type app struct {
	fs  afero.Fs
	log *zap.Logger

	verbose bool
}

func main() {
	a := &app{fs: afero.NewOsFs()}
	if err := newRootCmd(a).Execute(); err != nil {
		if a.log != nil {
			a.log.Error("command failed", zap.Error(err))
			_ = a.log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvcluster",
		Short:         "k-medoids clustering and vector-field analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log == nil {
				a.log = newLogger(a.verbose, cmd.ErrOrStderr())
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every accepted iteration")

	root.AddCommand(kmedoidsCmd(a), vectorfieldCmd(a))
	return root
}

// writerFor opens path for writing, or returns fallback when path is empty.
// The returned close function is always safe to call.
func (a *app) writerFor(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := a.fs.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
