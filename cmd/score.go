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

	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal/scorer"
)

var (
	candidateFile string
	scoreRefFile  string
	scoreLang     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate translation against a reference",
	Long: `Compute METEOR and sentence-level BLEU between a candidate
translation and a reference, both read from files. --lang selects the
stemmer used by METEOR's stemmed-match stage.

Example:
  medtran score -c machine_fr.txt -r human_fr.txt --lang fr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := os.ReadFile(candidateFile)
		if err != nil {
			return fmt.Errorf("failed to read candidate file: %w", err)
		}
		reference, err := os.ReadFile(scoreRefFile)
		if err != nil {
			return fmt.Errorf("failed to read reference file: %w", err)
		}

		result, ok := scorer.Score(string(candidate), string(reference), scoreLang)
		if !ok {
			return fmt.Errorf("scores are undefined: candidate or reference has no tokens")
		}

		fmt.Printf("METEOR: %.4f\n", result.Meteor)
		fmt.Printf("BLEU:   %.4f\n", result.BLEU)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVarP(&candidateFile, "candidate", "c", "", "Candidate translation file (required)")
	scoreCmd.Flags().StringVarP(&scoreRefFile, "reference", "r", "", "Reference translation file (required)")
	scoreCmd.Flags().StringVar(&scoreLang, "lang", "en", "Language of both texts: en|fr (selects the stemmer)")

	scoreCmd.MarkFlagRequired("candidate")
	scoreCmd.MarkFlagRequired("reference")
}
