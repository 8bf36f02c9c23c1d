package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdxmph/clientbook/internal/clipboard"
	"github.com/pdxmph/clientbook/internal/config"
	"github.com/pdxmph/clientbook/internal/db"
	"github.com/pdxmph/clientbook/internal/logging"
	"github.com/pdxmph/clientbook/internal/model"
	"github.com/pdxmph/clientbook/internal/tui"
)

type rootFlags struct {
	configPath string
	dbPath     string
	noVisuals  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "clientbook",
		Short:         "Browse client contacts and copy message templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/clientbook/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "database path (overrides config)")
	rootCmd.Flags().BoolVar(&flags.noVisuals, "no-visuals", false, "disable net worth tag highlighting")

	rootCmd.AddCommand(
		newInitCmd(flags),
		newFixturesCmd(flags),
		newFindCmd(flags),
	)

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(flags *rootFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFrom(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flags.dbPath != "" {
		cfg.Database.Path = flags.dbPath
	}
	if flags.noVisuals {
		cfg.UI.Visuals = false
	}
	return cfg, nil
}

func runTUI(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, err := db.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	copier, err := clipboard.NewManager(cfg.Clipboard.Backend, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.String("db", cfg.Database.Path), zap.String("clipboard", copier.Name()))

	app, err := tui.New(database, tui.Options{
		Visuals: cfg.UI.Visuals,
		Actions: tui.DefaultTemplateActions(cfg.Templates),
		Copier:  copier,
		Avatars: tui.NewAvatarLoader(cfg.ResolveImage, logger),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty contacts database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := db.Initialize(cfg.Database.Path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database created at %s\n", cfg.Database.Path)
			return nil
		},
	}
}

func newFixturesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Create a database filled with sample clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := db.CreateFixturesDatabase(cfg.Database.Path, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample database created at %s\n", cfg.Database.Path)
			return nil
		},
	}
}

func newFindCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD [MORE_KEYWORDS]...",
		Short: "List contacts whose name, phone, email, address or tags contain any keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			database, err := db.Open(cfg.Database.Path, nil)
			if err != nil {
				return err
			}
			defer database.Close()

			contacts, err := database.ListContacts()
			if err != nil {
				return err
			}

			matches := model.NewKeywordPredicate(args).Filter(contacts)
			printContacts(cmd.OutOrStdout(), matches)
			return nil
		},
	}
}

func printContacts(w io.Writer, contacts []model.Contact) {
	fmt.Fprintf(w, "%d contacts listed!\n", len(contacts))
	for i, c := range contacts {
		tags := make([]string, 0, len(c.Tags))
		for _, t := range c.SortedTags() {
			tags = append(tags, t.String())
		}
		line := fmt.Sprintf("%d. %s", i+1, c.Name)
		if c.Phone != "" {
			line += "  " + c.Phone
		}
		if c.Email != "" {
			line += "  " + c.Email
		}
		if len(tags) > 0 {
			line += "  [" + strings.Join(tags, ", ") + "]"
		}
		fmt.Fprintln(w, line)
	}
}
