// Package report contains the derived-report commands: holdings, cashflow
// and networth.
package report

import (
	"fmt"

	"fjacquet/quicken-query/cmd/root"
	"fjacquet/quicken-query/internal/ledger"
	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdate"
	"fjacquet/quicken-query/internal/reports"

	"github.com/spf13/cobra"
)

// cashDisplayFloor hides cash lines below one cent in the holdings report.
const cashDisplayFloor = 0.01

// Cmd is the parent report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Derive reports from the transaction stream",
	Long:  `Derive holdings, cash-flow and net-worth reports, restricted by the shared flags.`,
}

var holdingsCmd = &cobra.Command{
	Use:   "holdings",
	Short: "Report account holdings (cash and securities)",
	Run:   holdingsFunc,
}

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Report total income or outgo by category",
	Run:   cashflowFunc,
}

var networthCmd = &cobra.Command{
	Use:   "networth",
	Short: "Report net worth by year",
	Run:   networthFunc,
}

func init() {
	Cmd.AddCommand(holdingsCmd)
	Cmd.AddCommand(cashflowCmd)
	Cmd.AddCommand(networthCmd)
}

func holdingsFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	asOf := holdingsDate(s)
	holdings, err := reports.Holdings(s, asOf)
	if err != nil {
		root.Log.Fatalf("Error computing holdings: %v", err)
	}

	for _, h := range holdings {
		fmt.Printf("%-10s %-55.55s    %10s\n", asOf, h.Account, models.FormatAmount(h.Total))
		if len(h.Positions) == 0 {
			continue
		}
		for _, p := range h.Positions {
			fmt.Printf("               %-20.20s %10s @ %7s = %10s\n",
				p.Security,
				models.FormatShares(p.Shares),
				models.FormatPrice(p.Price),
				models.FormatAmount(p.Value))
		}
		if h.Cash >= cashDisplayFloor {
			fmt.Printf("               %-20.20s %33s\n", "Cash", models.FormatAmount(h.Cash))
		}
	}
}

// holdingsDate picks the evaluation date: --date-to when given, today
// otherwise. With no explicit bound, future-dated transactions are excluded
// from the stream so the snapshot reflects the present.
func holdingsDate(s *ledger.Session) string {
	if to := s.Restriction().DateTo; to != "" {
		return to
	}
	today := qdate.Today()
	if err := s.RestrictToDates(s.Restriction().DateFrom, today); err != nil {
		root.Log.Fatalf("Error restricting dates: %v", err)
	}
	return today
}

func cashflowFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	flows, err := reports.CashFlow(s)
	if err != nil {
		root.Log.Fatalf("Error computing cash flow: %v", err)
	}
	for _, flow := range flows {
		fmt.Printf("%-30s %12s\n", flow.Path, models.FormatAmount(flow.Amount))
	}
}

func networthFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	cutoff := s.Restriction().DateTo
	if cutoff == "" {
		cutoff = qdate.Today()
	}

	values, err := reports.NetWorthByYear(s, cutoff)
	if err != nil {
		root.Log.Fatalf("Error computing net worth: %v", err)
	}
	for _, v := range values {
		fmt.Printf("%s %13s\n", v.Date, models.FormatAmount(v.NetWorth))
	}
}
