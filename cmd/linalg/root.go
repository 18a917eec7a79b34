// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlath/matrixio"
	"github.com/katalvlaran/lvlath/numeric"
)

const envPrefix = "LINALG"

// Flag keys shared between cobra and viper.
const (
	flagLogLevel = "log-level"
	flagFile     = "file"
	flagMatrix   = "matrix"
	flagLHS      = "lhs"
	flagRHS      = "rhs"
	flagNaive    = "naive"
	flagVerify   = "verify"
	flagYAML     = "yaml"
	flagOut      = "out"
	flagSize     = "size"
)

// app carries the resolved configuration and logger into every command.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "linalg",
		Short:         "Fixed-shape linear algebra over matrixio documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.log.SetOutput(cmd.ErrOrStderr())
			level, err := logrus.ParseLevel(a.v.GetString(flagLogLevel))
			if err != nil {
				return err
			}
			a.log.SetLevel(level)

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagLogLevel, logrus.InfoLevel.String(), "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.StringP(flagFile, "f", "", "matrixio document to read (YAML or JSON)")

	cmd.AddCommand(
		newDetCommand(a),
		newMulCommand(a),
		newTransposeCommand(a),
		newReduceCommand(a),
		newHeatmapCommand(a),
	)

	return cmd
}

// addMatrixFlag declares the common --matrix selector.
func addMatrixFlag(fs *pflag.FlagSet) {
	fs.String(flagMatrix, "a", "name of the matrix inside the document")
}

// load decodes the document named by --file.
func (a *app) load() (*matrixio.Document, error) {
	path := a.v.GetString(flagFile)
	if path == "" {
		return nil, fmt.Errorf("--%s is required", flagFile)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := matrixio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{
		"file":     path,
		"dtype":    doc.DType,
		"matrices": len(doc.Matrices),
	}).Debug("document loaded")

	return doc, nil
}

// byKind runs the job instantiated for the document's element kind.
func byKind(kind string, f32, f64, i32, i64, u32, u64 func() error) error {
	switch kind {
	case numeric.KindFloat32:
		return f32()
	case numeric.KindFloat64:
		return f64()
	case numeric.KindInt32:
		return i32()
	case numeric.KindInt64:
		return i64()
	case numeric.KindUint32:
		return u32()
	case numeric.KindUint64:
		return u64()
	}

	return fmt.Errorf("unsupported dtype %q", kind)
}
