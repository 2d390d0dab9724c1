package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	common "github.com/stakehouse/pitboss/internal/cli/common"
	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/ports"
	configrepo "github.com/stakehouse/pitboss/internal/repo/gorm/configs"
)

func main() {
	root := &cobra.Command{Use: "pitboss", Short: "Pitboss back-office CLI"}

	root.AddCommand(newConfigTestCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSeedGameCmd())

	comp := &cobra.Command{Use: "completion [bash|zsh|fish|powershell]", Short: "Generate shell completion"}
	comp.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatalf("specify a shell: bash|zsh|fish|powershell")
		}
		switch args[0] {
		case "bash":
			root.GenBashCompletion(os.Stdout)
		case "zsh":
			root.GenZshCompletion(os.Stdout)
		case "fish":
			root.GenFishCompletion(os.Stdout, true)
		case "powershell":
			root.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			log.Fatalf("unknown shell: %s", args[0])
		}
	}
	root.AddCommand(comp)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newConfigTestCmd() *cobra.Command {
	var cfgFile string
	var includes []string
	var strict bool
	cmd := &cobra.Command{
		Use:   "config-test",
		Short: "Validate and print effective service config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return fmt.Errorf("--config required")
			}
			v, err := common.LoadWithIncludes(cfgFile, includes)
			if err != nil {
				return err
			}
			if err := common.ValidateAdminConfig(v, strict); err != nil {
				return err
			}
			fmt.Println("admin config OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.Flags().StringArrayVar(&includes, "include", nil, "additional config files merged in order")
	cmd.Flags().BoolVar(&strict, "strict", false, "require referenced paths to exist")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var typeName, logLevel, logFormat string
	cmd := &cobra.Command{
		Use:   "validate <payload.json>",
		Short: "Run a config payload through the validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			common.SetupLogger(logLevel, logFormat, "")
			t := gameconfig.Type(typeName)
			if !t.Valid() {
				return fmt.Errorf("unknown config type: %s", typeName)
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var payload map[string]any
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("payload: %w", err)
			}
			normalized, verr := gameconfig.Validate(t, payload)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if verr != nil {
				enc.Encode(verr)
				os.Exit(1)
			}
			return enc.Encode(normalized)
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "config type (dice-math, crash-math, ...)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log format: console|json")
	cmd.MarkFlagRequired("type")
	return cmd
}

func newSeedGameCmd() *cobra.Command {
	var driver, dsn, id, name, category string
	var enabled bool
	cmd := &cobra.Command{
		Use:   "seed-game",
		Short: "Insert a game row so configs can be saved against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dial gorm.Dialector
			switch driver {
			case "postgres":
				dial = postgres.Open(dsn)
			case "", "sqlite":
				if dsn == "" {
					dsn = "data/pitboss.db"
				}
				dial = sqlite.Open(dsn)
			default:
				return fmt.Errorf("unknown driver: %s", driver)
			}
			db, err := gorm.Open(dial, &gorm.Config{})
			if err != nil {
				return err
			}
			if err := configrepo.AutoMigrate(db); err != nil {
				return err
			}
			g := &ports.Game{ID: id, Name: name, Category: category, Enabled: enabled}
			if err := configrepo.NewGameRepo(db).Create(context.Background(), g); err != nil {
				return err
			}
			fmt.Printf("seeded game %s (%s)\n", id, category)
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "sqlite", "database driver: sqlite|postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database DSN")
	cmd.Flags().StringVar(&id, "id", "", "game id")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&category, "category", "", "game category: dice|crash|slot|blackjack|poker")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the game is enabled")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("category")
	return cmd
}
