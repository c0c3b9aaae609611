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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/radialnet/radial/pkg/log"
)

// CommandPather returns the path to a command.
type CommandPather interface {
	CommandPath() string
}

func main() {
	executable := filepath.Base(os.Args[0])
	cmd := &cobra.Command{
		Use:           executable,
		Short:         "Radial hub and spoke topology tool",
		SilenceErrors: true,
	}
	var logConsole string
	cmd.PersistentFlags().StringVar(&logConsole, "log.console", "info",
		"Console logging level: debug|info|error")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return log.Setup(log.Config{
			Console: log.ConsoleConfig{Level: logConsole},
		})
	}
	cmd.AddCommand(
		newPlan(cmd),
		newSample(cmd),
	)
	err := cmd.Execute()
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
