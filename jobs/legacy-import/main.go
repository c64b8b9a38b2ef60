package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

var inputFilePath string

var rootCmd = &cobra.Command{
	Use:   "legacy-import",
	Short: "Import legacy story submissions from a JSON export",
	Long: `Reads a JSON array of legacy submissions and inserts them into the
submission database. Entries whose email or submission timestamp already
exist are skipped. All imported submissions start in pending state. The
source file is copied to a timestamped backup after the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		initService()
		return runImport(inputFilePath)
	},
}

func main() {
	rootCmd.Flags().StringVar(&inputFilePath, "input", "", "path to the legacy JSON export (required)")
	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	if err := rootCmd.Execute(); err != nil {
		slog.Error("legacy import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runImport(inputPath string) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	var legacySubmissions []LegacySubmission
	if err := json.Unmarshal(content, &legacySubmissions); err != nil {
		return fmt.Errorf("could not parse input file: %w", err)
	}

	slog.Info("starting legacy import",
		slog.String("input", inputPath),
		slog.Int("entries", len(legacySubmissions)))

	migrated := 0
	skipped := 0
	for i, legacy := range legacySubmissions {
		submission := mapLegacySubmission(legacy)

		_, err := submissionDBService.FindDuplicate(submission.PersonalInfo.Email, submission.SubmittedAt)
		if err == nil {
			slog.Info("skipping duplicate entry",
				slog.Int("index", i),
				slog.String("email", submission.PersonalInfo.Email))
			skipped++
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("duplicate check failed for entry %d: %w", i, err)
		}

		if _, err := submissionDBService.CreateSubmission(&submission); err != nil {
			return fmt.Errorf("could not insert entry %d: %w", i, err)
		}
		migrated++
	}

	slog.Info("legacy import finished",
		slog.Int("migrated", migrated),
		slog.Int("skipped", skipped))

	backupPath, err := backupSourceFile(inputPath)
	if err != nil {
		slog.Error("could not create backup of source file", slog.String("error", err.Error()))
		return err
	}
	slog.Info("source file backed up", slog.String("backup", backupPath))
	return nil
}

// backupSourceFile copies the import source next to itself with a
// timestamped name so a re-run cannot silently reuse a stale export.
func backupSourceFile(inputPath string) (string, error) {
	backupPath := fmt.Sprintf("%s.backup-%d.json", inputPath, time.Now().UnixMilli())

	src, err := os.Open(inputPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return backupPath, nil
}
