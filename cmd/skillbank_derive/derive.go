package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillbank-derive/internal/config"
	"github.com/jonathan/skillbank-derive/internal/derivation"
	"github.com/jonathan/skillbank-derive/internal/observability"
	"github.com/spf13/cobra"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a resume-ready value from the skill bank",
	Long:  "Projects one skill bank entity (plus an optional content variation) into the resume-ready value for its section and writes it as JSON.",
	RunE:  runDerive,
}

var (
	deriveConfigPath  string
	deriveBankFile    string
	deriveBankURL     string
	deriveDatabaseURL string
	deriveUserID      string
	deriveSection     string
	deriveEntryID     string
	deriveVariationID string
	deriveOutputFile  string
	deriveTimeout     int
	deriveVerbose     bool
)

func init() {
	deriveCmd.Flags().StringVarP(&deriveConfigPath, "config", "c", "", "Path to JSON config file")
	deriveCmd.Flags().StringVar(&deriveBankFile, "bank", "", "Path to a skill bank JSON snapshot")
	deriveCmd.Flags().StringVar(&deriveBankURL, "bank-url", "", "Base URL of the skill bank service")
	deriveCmd.Flags().StringVar(&deriveDatabaseURL, "database-url", "", "PostgreSQL connection URL")
	deriveCmd.Flags().StringVarP(&deriveUserID, "user", "u", "", "User UUID")
	deriveCmd.Flags().StringVarP(&deriveSection, "section", "s", "", "Resume section (required)")
	deriveCmd.Flags().StringVarP(&deriveEntryID, "entry", "e", "", "Entity id within the section (summary defaults to the default summary; skills need none)")
	deriveCmd.Flags().StringVar(&deriveVariationID, "variation", "", "Content variation id (optional; unknown ids fall back to entity defaults)")
	deriveCmd.Flags().StringVarP(&deriveOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	deriveCmd.Flags().IntVar(&deriveTimeout, "timeout", 0, "HTTP fetch timeout in seconds")
	deriveCmd.Flags().BoolVarP(&deriveVerbose, "verbose", "v", false, "Print detailed derivation information")

	if err := deriveCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}

	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(deriveConfigPath, config.Config{
		BankFile:       deriveBankFile,
		BankURL:        deriveBankURL,
		DatabaseURL:    deriveDatabaseURL,
		UserID:         deriveUserID,
		TimeoutSeconds: deriveTimeout,
		Verbose:        deriveVerbose,
	})
	if err != nil {
		return err
	}

	section := derivation.SectionKey(deriveSection)
	if !derivation.ValidSection(section) {
		return fmt.Errorf("unknown section %q", deriveSection)
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
	if loadErr := session.Err(); loadErr != nil {
		return fmt.Errorf("failed to load skill bank: %w", loadErr)
	}

	value, err := deriveValue(session, section, deriveEntryID, deriveVariationID)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal derived value: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintDerivedValue(section, value)
	}

	if deriveOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	outputDir := filepath.Dir(deriveOutputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(deriveOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Derived %s value written\n", section)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", deriveOutputFile)

	return nil
}

// deriveValue dispatches one section derivation through the session facade.
func deriveValue(session *derivation.Session, section derivation.SectionKey, entryID, variationID string) (any, error) {
	switch section {
	case derivation.SectionSummary:
		optionID := entryID
		if optionID == "" {
			optionID = derivation.DefaultSummaryOptionID
		}
		return session.DeriveSummary(optionID)

	case derivation.SectionExperience:
		if entryID == "" {
			return nil, fmt.Errorf("--entry is required for section %q", section)
		}
		return session.DeriveExperience(entryID, variationID)

	case derivation.SectionEducation:
		if entryID == "" {
			return nil, fmt.Errorf("--entry is required for section %q", section)
		}
		return session.DeriveEducation(entryID, variationID)

	case derivation.SectionProjects:
		if entryID == "" {
			return nil, fmt.Errorf("--entry is required for section %q", section)
		}
		return session.DeriveProject(entryID, variationID)

	case derivation.SectionSkills:
		return session.DeriveSkills()

	case derivation.SectionCertifications:
		if entryID == "" {
			return nil, fmt.Errorf("--entry is required for section %q", section)
		}
		return session.DeriveCertification(entryID)

	default:
		return nil, fmt.Errorf("section %q has no bank-derived content", section)
	}
}
