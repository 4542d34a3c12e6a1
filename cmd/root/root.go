// Package root contains the root command for the application.
package root

import (
	"fmt"
	"strings"

	"fjacquet/quicken-query/internal/config"
	"fjacquet/quicken-query/internal/ledger"
	"fjacquet/quicken-query/internal/profile"
	"fjacquet/quicken-query/internal/reports"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	DB         string
	Accounts   string
	Categories string
	Payees     string
	Securities string
	DateFrom   string
	DateTo     string
	Profile    string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags holds the restriction flags shared by all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "quicken-query",
		Short: "A CLI tool to query a Quicken-for-Mac data file.",
		Long: `quicken-query reads a Quicken-for-Mac data file and lists its accounts,
categories, payees, securities, quotes and transactions, optionally restricted
by account, category, payee, security or date range. It also derives holdings,
cash-flow and net-worth reports. The data file is only ever opened read-only.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to quicken-query!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			ledger.SetLogger(Log)
			reports.SetLogger(Log)
		},
	}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.DB, "db", "", "Path to the Quicken data file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Accounts, "accounts", "", "Limit to specified (comma separated) accounts")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Categories, "categories", "", "Limit to specified (comma separated) category paths")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Payees, "payees", "", "Limit to specified (comma separated) payees")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Securities, "securities", "", "Limit to specified (comma separated) securities")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DateFrom, "date-from", "", "Limit transactions to and after date (YYYY-MM-DD)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DateTo, "date-to", "", "Limit transactions to and before date (YYYY-MM-DD)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Profile, "profile", "", "YAML file with a saved restriction profile")
}

// OpenSession opens the data file named by --db (or the configured default)
// and applies the profile and restriction flags to it. The caller owns the
// returned session and must close it.
func OpenSession() (*ledger.Session, error) {
	dbPath := SharedFlags.DB
	if dbPath == "" {
		cfg, err := config.InitializeConfig()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		return nil, fmt.Errorf("no data file given: use --db or set database.path in the config")
	}

	s, err := ledger.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if SharedFlags.Profile != "" {
		p, err := profile.Load(SharedFlags.Profile)
		if err != nil {
			s.Close()
			return nil, err
		}
		if err := p.Apply(s); err != nil {
			s.Close()
			return nil, err
		}
	}

	// Explicit flags win over the profile.
	if SharedFlags.Accounts != "" {
		s.RestrictToAccounts(SplitList(SharedFlags.Accounts))
	}
	if SharedFlags.Categories != "" {
		s.RestrictToCategories(SplitList(SharedFlags.Categories))
	}
	if SharedFlags.Payees != "" {
		s.RestrictToPayees(SplitList(SharedFlags.Payees))
	}
	if SharedFlags.Securities != "" {
		s.RestrictToSecurities(SplitList(SharedFlags.Securities))
	}
	if SharedFlags.DateFrom != "" || SharedFlags.DateTo != "" {
		from := SharedFlags.DateFrom
		to := SharedFlags.DateTo
		if from == "" {
			from = s.Restriction().DateFrom
		}
		if to == "" {
			to = s.Restriction().DateTo
		}
		if err := s.RestrictToDates(from, to); err != nil {
			s.Close()
			return nil, err
		}
	}

	return s, nil
}

// SplitList splits a comma separated flag value into trimmed names.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
