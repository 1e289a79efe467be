package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"todoscan/database"
	"todoscan/logger"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "List stored scans",
	Long:    `Displays all scans stored in the database, most recent first.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("Executing 'history' command")

		scans, err := database.GetScans()
		if err != nil {
			logger.Error("history: failed to query scans: %v", err)
			fmt.Fprintln(os.Stderr, "Error retrieving scans from database.")
			os.Exit(1)
		}

		if len(scans) == 0 {
			fmt.Println("No scans stored yet. Run 'todoscan scan [path]' first.")
			return
		}

		writer := new(tabwriter.Writer)
		writer.Init(os.Stdout, 0, 8, 1, '\t', 0)

		fmt.Fprintln(writer, "ID\tUUID\tROOT\tSTARTED\tFILES\tFINDINGS")
		fmt.Fprintln(writer, "--\t----\t----\t-------\t-----\t--------")

		for _, s := range scans {
			started := s.StartedAt.Format("2006-01-02 15:04:05")
			if !s.CompletedAt.Valid {
				started += " (running)"
			}
			fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%d\t%d\n",
				s.ID,
				s.UUID,
				s.RootPath,
				started,
				s.FilesScanned,
				s.TotalFindings,
			)
		}
		writer.Flush()
		logger.Info("Successfully listed %d scans", len(scans))
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
