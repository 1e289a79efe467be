package cmd

import (
	"fmt"
	"os"
	"todoscan/config"
	"todoscan/core"
	"todoscan/database"
	"todoscan/logger"
	"todoscan/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	scanExtensions []string
	scanSkipDirs   []string
	scanNoSave     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for TODO-like comments",
	Long: `Walks the given directory tree, extracts comments from every selected
source file, and prints all TODO-, FIXME- and XXX-style comments grouped by
their verbatim kind, followed by a summary with per-kind counts.

The scan is stored in the database unless --no-save is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := args[0]
		logger.Info("Executing 'scan' command for root: %s", root)

		opts := core.WalkOptions{
			Extensions: config.AppConfig.Scanner.Extensions,
			SkipDirs:   config.AppConfig.Scanner.SkipDirs,
			IgnoreFile: config.AppConfig.Scanner.IgnoreFile,
		}
		if cmd.Flags().Changed("ext") {
			opts.Extensions = scanExtensions
		}
		if cmd.Flags().Changed("skip-dir") {
			opts.SkipDirs = scanSkipDirs
		}

		tracker := core.NewCommentTracker()
		stats, err := core.WalkTree(root, opts, tracker)
		if err != nil {
			logger.Error("scan: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		core.RenderReport(os.Stdout, tracker)
		logger.Info("Scan of %q complete: %d files, %d findings across %d kinds",
			root, stats.FilesScanned, tracker.Total(), len(tracker.Kinds()))

		if scanNoSave {
			logger.Info("Skipping persistence (--no-save)")
			return
		}

		scanUUID := uuid.New().String()
		scanID, err := database.CreateScan(scanUUID, root)
		if err != nil {
			logger.Error("scan: failed to create scan record: %v", err)
			fmt.Fprintln(os.Stderr, "Error saving scan to database.")
			os.Exit(1)
		}

		if err := database.CreateFindings(trackerFindings(scanID, tracker)); err != nil {
			logger.Error("scan: failed to save findings for scan %d: %v", scanID, err)
			fmt.Fprintln(os.Stderr, "Error saving findings to database.")
			os.Exit(1)
		}

		if err := database.CompleteScan(scanID, int64(stats.FilesScanned), int64(tracker.Total())); err != nil {
			logger.Error("scan: failed to complete scan %d: %v", scanID, err)
			fmt.Fprintln(os.Stderr, "Error finalizing scan record.")
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "saved scan %s (id %d)\n", scanUUID, scanID)
		logger.Info("Scan saved: id=%d uuid=%s", scanID, scanUUID)
	},
}

// trackerFindings flattens the tracker into database rows in report order,
// tagging each kind with its first-seen rank.
func trackerFindings(scanID int64, tracker *core.CommentTracker) []models.Finding {
	var findings []models.Finding
	for rank, kind := range tracker.Kinds() {
		for _, c := range tracker.Comments(kind) {
			findings = append(findings, models.Finding{
				ScanID:      scanID,
				Kind:        kind,
				KindRank:    int64(rank),
				FilePath:    c.FilePath,
				StartLine:   int64(c.StartLine),
				CommentText: c.Text(),
			})
		}
	}
	return findings
}

func init() {
	scanCmd.Flags().StringSliceVarP(&scanExtensions, "ext", "e", nil, "file extensions to scan, e.g. --ext .go --ext .rs (overrides config)")
	scanCmd.Flags().StringSliceVarP(&scanSkipDirs, "skip-dir", "s", nil, "directory names to skip entirely (overrides config)")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "do not store the scan in the database")
	rootCmd.AddCommand(scanCmd)
}
