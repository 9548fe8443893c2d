package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/skillbank-derive/internal/config"
	"github.com/jonathan/skillbank-derive/internal/derivation"
	"github.com/jonathan/skillbank-derive/internal/observability"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List a resume section's derived options",
	Long:  "Loads the user's skill bank and lists the selectable options for one resume section, including each entity's available content variations.",
	RunE:  runOptions,
}

var (
	optionsConfigPath  string
	optionsBankFile    string
	optionsBankURL     string
	optionsDatabaseURL string
	optionsUserID      string
	optionsSection     string
	optionsTimeout     int
	optionsVerbose     bool
)

func init() {
	optionsCmd.Flags().StringVarP(&optionsConfigPath, "config", "c", "", "Path to JSON config file")
	optionsCmd.Flags().StringVar(&optionsBankFile, "bank", "", "Path to a skill bank JSON snapshot")
	optionsCmd.Flags().StringVar(&optionsBankURL, "bank-url", "", "Base URL of the skill bank service")
	optionsCmd.Flags().StringVar(&optionsDatabaseURL, "database-url", "", "PostgreSQL connection URL")
	optionsCmd.Flags().StringVarP(&optionsUserID, "user", "u", "", "User UUID")
	optionsCmd.Flags().StringVarP(&optionsSection, "section", "s", "", "Resume section (summary, experience, education, projects, skills, certifications) (required)")
	optionsCmd.Flags().IntVar(&optionsTimeout, "timeout", 0, "HTTP fetch timeout in seconds")
	optionsCmd.Flags().BoolVarP(&optionsVerbose, "verbose", "v", false, "Print detailed derivation information")

	if err := optionsCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}

	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(optionsConfigPath, config.Config{
		BankFile:       optionsBankFile,
		BankURL:        optionsBankURL,
		DatabaseURL:    optionsDatabaseURL,
		UserID:         optionsUserID,
		TimeoutSeconds: optionsTimeout,
		Verbose:        optionsVerbose,
	})
	if err != nil {
		return err
	}

	section := derivation.SectionKey(optionsSection)
	if !derivation.ValidSection(section) {
		return fmt.Errorf("unknown section %q", optionsSection)
	}

	ctx := cmd.Context()

	repo, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	userID, err := parseUserID(cfg.UserID, cfg.BankFile == "")
	if err != nil {
		return err
	}

	session := derivation.NewSession(repo, userID)
	session.Load(ctx)

	// A failed fetch degrades to empty option lists; surface the cause
	// without failing the command.
	if loadErr := session.Err(); loadErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: skill bank unavailable, sections stay manual: %v\n", loadErr)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSectionOptions(section, session.OptionsFor(section))

	if cfg.Verbose && section == derivation.SectionCertifications {
		printer.PrintCertificationOptions(session.CertificationOptions(), time.Now())
	}

	return nil
}
