// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gene-report CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once --debug is known.
var logger = zap.NewNop().Sugar()

// rootCmd is the base command for the gene-report CLI.
var rootCmd = &cobra.Command{
	Use:   "gene-report",
	Short: "Build gene and protein reports from HGNC and UniProt",
	Long: `gene-report looks up gene symbols in the HGNC nomenclature service and
the EBI Proteins API, extracts a fixed set of fields for every gene/protein
pair, and writes them as a report with one column per pair.

Use "report" for a batch run over a gene list and "lookup" to inspect a
single symbol.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger = setupLogging(debug)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debugw("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gene-report.yaml or ~/.config/gene-report/gene-report.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable development logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gene-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gene-report"))
		}
	}

	viper.SetEnvPrefix("GENE_REPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(1)
		}
	}
}

func setupLogging(debug bool) *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if debug {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to set up logging: %s", err.Error())
	}
	return l.Sugar()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
