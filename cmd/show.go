package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"todoscan/core"
	"todoscan/database"
	"todoscan/logger"
	"todoscan/models"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id|uuid]",
	Short: "Re-render the report of a stored scan",
	Long: `Looks up a stored scan by its numeric ID or UUID and re-renders its
full report from the database, preserving the original kind order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identifier := args[0]
		logger.Info("Executing 'show' command for identifier: %s", identifier)

		scan, err := getScanByIdentifier(identifier)
		if err != nil {
			logger.Error("show: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		findings, err := database.GetFindingsByScanID(scan.ID, "")
		if err != nil {
			logger.Error("show: failed to query findings for scan %d: %v", scan.ID, err)
			fmt.Fprintln(os.Stderr, "Error retrieving findings from database.")
			os.Exit(1)
		}

		fmt.Printf("scan %s of %s\n\n", scan.UUID, scan.RootPath)
		core.RenderStoredReport(os.Stdout, findings)
		logger.Info("Successfully rendered stored scan %d (%d findings)", scan.ID, len(findings))
	},
}

// getScanByIdentifier resolves a scan by numeric ID first, then by UUID.
func getScanByIdentifier(identifier string) (models.Scan, error) {
	scanID, parseErr := strconv.ParseInt(identifier, 10, 64)
	if parseErr == nil {
		return database.GetScanByID(scanID)
	}
	scan, err := database.GetScanByUUID(identifier)
	if err != nil && strings.Contains(err.Error(), "not found") {
		return scan, fmt.Errorf("no scan with ID or UUID '%s'", identifier)
	}
	return scan, err
}

func init() {
	rootCmd.AddCommand(showCmd)
}
