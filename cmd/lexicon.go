/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect the medical abbreviation lexicon",
	Long: `Inspect the fixed abbreviation tables applied around translation.
The tables are compiled into the binary; the reverse direction is the
exact inverse of the forward one.`,
}

var lexiconDirection string

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lexicon entries in substitution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := internal.ParseTarget(lexiconDirection)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s TERM\t%s TERM\n", d.Source(), d.Target())
		for _, e := range lexicon.Entries(d) {
			fmt.Fprintf(w, "%s\t%s\n", e.SourceTerm, e.TargetTerm)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)

	lexiconListCmd.Flags().StringVarP(&lexiconDirection, "to", "t", "french", "Direction by target language: french|fr|english|en")
	lexiconCmd.AddCommand(lexiconListCmd)
}
