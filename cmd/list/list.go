// Package list contains the listing commands: accounts, categories, payees,
// securities, quotes and transactions.
package list

import (
	"fmt"

	"fjacquet/quicken-query/cmd/root"
	"fjacquet/quicken-query/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the parent list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List entities from the data file",
	Long:  `List accounts, categories, payees, securities, quotes or transactions.`,
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts by name",
	Run:   accountsFunc,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories by path",
	Run:   categoriesFunc,
}

var payeesCmd = &cobra.Command{
	Use:   "payees",
	Short: "List payees by name",
	Run:   payeesFunc,
}

var securitiesCmd = &cobra.Command{
	Use:   "securities",
	Short: "List securities",
	Run:   securitiesFunc,
}

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List price quotes for every security",
	Run:   quotesFunc,
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transaction splits, restricted by the shared flags",
	Run:   transactionsFunc,
}

func init() {
	Cmd.AddCommand(accountsCmd)
	Cmd.AddCommand(categoriesCmd)
	Cmd.AddCommand(payeesCmd)
	Cmd.AddCommand(securitiesCmd)
	Cmd.AddCommand(quotesCmd)
	Cmd.AddCommand(transactionsCmd)
}

func accountsFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	for _, account := range s.Accounts() {
		fmt.Printf("[%2d] %-30s\n", account.Key, account.Name)
	}
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	for _, category := range s.Categories() {
		fmt.Printf("[%3d] %-30s\n", category.Key, category.Path)
	}
}

func payeesFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	it, err := s.Payees()
	if err != nil {
		root.Log.Fatalf("Error listing payees: %v", err)
	}
	for it.Next() {
		payee := it.Payee()
		fmt.Printf("[%5d] %-30s\n", payee.Key, payee.Name)
	}
	if err := it.Err(); err != nil {
		root.Log.Fatalf("Error listing payees: %v", err)
	}
}

func securitiesFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	for _, security := range s.Securities() {
		fmt.Printf("[%3d] %-15s %-30s\n", security.Key, security.Ticker, security.Name)
	}
}

func quotesFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenSession()
	if err != nil {
		root.Log.Fatalf("Error opening session: %v", err)
	}
	defer s.Close()

	for _, security := range s.Securities() {
		fmt.Printf("[%3d] %-15s %-30s\n", security.Key, security.Ticker, security.Name)
		it, err := s.Quotes(security.Key)
		if err != nil {
			root.Log.Fatalf("Error listing quotes: %v", err)
		}
		for it.Next() {
			quote := it.Quote()
			fmt.Printf("            %-10s %9.3f\n", quote.Date, quote.Price)
		}
		if err := it.Err(); err != nil {
			root.Log.Fatalf("Error listing quotes: %v", err)
		}
	}
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
	defer it.Close()

	for it.Next() {
		fmt.Println(formatTransaction(it.Record()))
	}
	if err := it.Err(); err != nil {
		root.Log.Fatalf("Error listing transactions: %v", err)
	}
}

func formatTransaction(t models.TransactionSplit) string {
	line := fmt.Sprintf("[%5d] %-10s %-30s %-30s %11.2f %-30s",
		t.Key,
		t.Date,
		fmt.Sprintf(" [%d]%-15s", t.AccountKey, t.AccountName),
		fmt.Sprintf(" [%d]%-15s", t.PayeeKey, t.PayeeName),
		t.Amount,
		fmt.Sprintf(" [%d]%-15s", t.CategoryKey, t.CategoryPath))
	if t.HasSecurity() {
		line += fmt.Sprintf(" [%d]%-15s (%s)%11.3f",
			t.SecurityKey, t.SecurityName, t.SecurityTicker, t.SecurityShares)
	}
	return line
}
