// Copyright © 2026 NDID Platform contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ndid-e2e",
	Short: "Utilities for exercising an identity platform stack",
	Long: "ndid-e2e bundles the helper processes used alongside the end-to-end test\n" +
		"suite, such as a standalone callback sink and a node key generator.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(sinkCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(probeCmd)
}

// setupContext reads the configuration and returns a context carrying
// a logger configured per that configuration
func setupContext() (context.Context, error) {
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", os.Getpid()))
	log.SetLevel(config.GetString(config.LogLevel))
	log.SetupLogging(ctx, config.GetBool(config.LogColor))

	if err != nil {
		return ctx, errors.WithMessage(err, "failed to read config")
	}
	return ctx, nil
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}
