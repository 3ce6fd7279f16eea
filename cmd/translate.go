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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/config"
	"github.com/valpere/medtran/internal/service"
)

var (
	inputFile     string
	outputFile    string
	translateTo   string
	referenceFile string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a file through the abbreviation-aware pipeline",
	Long: `Translate the contents of a file through the same
protect → translate → restore pipeline the HTTP API uses.

With --reference, the translation is also scored against the reference
file and the METEOR/BLEU values are printed to stderr.

Example:
  medtran translate -i notes_en.txt -o notes_fr.txt --to french`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		d, err := internal.ParseTarget(translateTo)
		if err != nil {
			return err
		}

		strInp, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text := string(strInp)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx := context.Background()
		svc, err := buildService(ctx, cfg)
		if err != nil {
			return err
		}

		req := service.Request{ID: uuid.New().String(), TargetLanguage: translateTo}
		if d == internal.ToFrench {
			req.EnglishText = text
		} else {
			req.FrenchText = text
		}
		if referenceFile != "" {
			ref, err := os.ReadFile(referenceFile)
			if err != nil {
				return fmt.Errorf("failed to read reference file: %w", err)
			}
			if d == internal.ToFrench {
				req.GroundTruthFrench = string(ref)
			} else {
				req.GroundTruthEnglish = string(ref)
			}
		}

		result, err := svc.Translate(ctx, req)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(result.TranslatedText), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Successfully translated %s to %s\n", d.Source(), d.Target())
		if result.Meteor != nil && result.BLEU != nil {
			fmt.Fprintf(os.Stderr, "METEOR: %.4f  BLEU: %.4f\n", *result.Meteor, *result.BLEU)
		} else if referenceFile != "" {
			fmt.Fprintln(os.Stderr, "Reference supplied but scores are undefined (empty token sequence)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (required)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (required)")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "Target language: french|fr|english|en (required)")
	translateCmd.Flags().StringVarP(&referenceFile, "reference", "r", "", "Reference file in the target language for scoring")

	translateCmd.MarkFlagRequired("input")
	translateCmd.MarkFlagRequired("output")
	translateCmd.MarkFlagRequired("to")
}
