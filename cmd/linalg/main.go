// SPDX-License-Identifier: MIT

// Command linalg evaluates lvlath matrix operations over matrixio documents.
//
//	linalg det -f doc.yaml --matrix a --verify
//	linalg mul -f doc.yaml --lhs a --rhs b
//	linalg heatmap -f doc.yaml --matrix a --out a.png
//
// Every flag can also be set through the environment with the LINALG_
// prefix, e.g. LINALG_LOG_LEVEL=debug.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("linalg failed")
		os.Exit(1)
	}
}
