// Copyright 2026 Radial Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radialnet/radial/pkg/private/serrors"
	"github.com/radialnet/radial/topology/config"
)

func newSample(pather CommandPather) *cobra.Command {
	var flags struct {
		out string
	}

	var cmd = &cobra.Command{
		Use:   "sample",
		Short: "Write a commented sample topology definition",
		Example: fmt.Sprintf(`  %[1]s sample
  %[1]s sample --out topology.toml`, pather.CommandPath()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if flags.out == "" {
				return config.WriteSample(cmd.OutOrStdout())
			}
			file, err := os.Create(flags.out)
			if err != nil {
				return serrors.Wrap("creating sample file", err, "file", flags.out)
			}
			if err := config.WriteSample(file); err != nil {
				file.Close()
				return serrors.Wrap("writing sample file", err, "file", flags.out)
			}
			return file.Close()
		},
	}
	cmd.Flags().StringVar(&flags.out, "out", "",
		"Write the sample to a file instead of stdout")

	return cmd
}
