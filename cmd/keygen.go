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
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/log"
	"github.com/ndidplatform/api-e2e-go/internal/nodekey"
)

// keygenCmd generates an RSA node key pair, written as PEM files named
// after each node ID given on the command line.
var keygenCmd = &cobra.Command{
	Use:   "keygen <node-id> [<node-id> ...]",
	Short: "Generate RSA key pairs for stack nodes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setupContext()
		if err != nil {
			return err
		}

		bits := config.GetInt(config.KeygenBits)
		outDir := config.GetString(config.KeygenOutDir)

		for _, nodeID := range args {
			kp, err := nodekey.Generate(bits)
			if err != nil {
				return errors.WithMessagef(err, "generating key for %s", nodeID)
			}
			privFile := filepath.Join(outDir, nodeID+".pem")
			if err := ioutil.WriteFile(privFile, kp.PrivatePEM(), 0600); err != nil {
				return err
			}
			publicKey, err := kp.PublicPEM()
			if err != nil {
				return err
			}
			pubFile := filepath.Join(outDir, nodeID+".pub.pem")
			if err := ioutil.WriteFile(pubFile, []byte(publicKey), 0644); err != nil {
				return err
			}
			log.L(ctx).Infof("Wrote %d bit key pair for %s: %s", bits, nodeID, privFile)
		}
		return nil
	},
}
