// Package export contains the CSV export command.
package export

import (
	"fmt"
	"os"

	"fjacquet/quicken-query/cmd/root"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var outputFile string

// Cmd is the parent export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to CSV",
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Export transaction splits to a CSV file",
	Long:  `Export the restricted transaction-split stream to a CSV file, one row per split.`,
	Run:   transactionsFunc,
}

func init() {
	transactionsCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (required)")
	transactionsCmd.MarkFlagRequired("output")
	Cmd.AddCommand(transactionsCmd)
}

func transactionsFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	it, err := s.Transactions()
	if err != nil {
		root.Log.Fatalf("Error querying transactions: %v", err)
	}
	records, err := it.Collect()
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	if err := writeCSV(&records, outputFile); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Infof("Exported %d transaction splits to %s", len(records), outputFile)
}

func writeCSV(records interface{}, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.Warnf("Failed to close file: %v", err)
		}
	}()

	if err := gocsv.MarshalFile(records, file); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	return nil
}
