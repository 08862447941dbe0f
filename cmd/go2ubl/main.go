// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the go2ubl CLI, a command-line front
// end to the Go2UBL company and document APIs.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/go2ubl/internal/secrets"
	"github.com/pdiddy/go2ubl/pkg/go2ubl"
	"github.com/pdiddy/go2ubl/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout = 30 * time.Second
	secretsDir     = ".secrets/"
)

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Credentials

var log = logrus.New()

// credential returns the configured value for key, or the secret file value
// when no flag, env var or config entry sets it.
func credential(key, fromSecrets string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fromSecrets
}

// rootCmd is the base command for the go2ubl CLI.
var rootCmd = &cobra.Command{
	Use:   "go2ubl",
	Short: "Manage Go2UBL companies and documents",
	Long: `go2ubl talks to the Go2UBL document conversion service. It registers
companies by chamber of commerce (KvK) number, maintains the email whitelist
of senders allowed to submit documents for them, uploads purchase documents
for conversion to UBL, and lists documents by processing state.

Credentials (identifier, code, token) are read from flags, GO2UBL_* env vars,
a go2ubl.yaml config file, or files in .secrets/, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		if f := viper.ConfigFileUsed(); f != "" {
			log.WithField("file", f).Debug("using config file")
		}

		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if !s.Empty() {
			log.WithField("dir", secretsDir).Debug("loaded credentials from secrets directory")
		}

		switch f := viper.GetString("output"); f {
		case formatJSON, formatYAML:
		default:
			return fmt.Errorf("unknown output format %q (want json or yaml)", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./go2ubl.yaml or ~/.config/go2ubl/config.yaml)")
	flags.String("output", formatJSON, "output format: json or yaml")
	flags.Bool("verbose", false, "log each request to stderr")
	flags.String("company-api", types.DefaultCompanyAPI, "base URL of the company API")
	flags.String("document-api", types.DefaultDocumentAPI, "base URL of the document API")
	flags.String("identifier", "", "Go2UBL identifier")
	flags.String("code", "", "Go2UBL code")
	flags.String("token", "", "Go2UBL token")
	flags.Duration("timeout", defaultTimeout, "HTTP request timeout")

	for key, flag := range map[string]string{
		"output":       "output",
		"verbose":      "verbose",
		"company_api":  "company-api",
		"document_api": "document-api",
		"identifier":   "identifier",
		"code":         "code",
		"token":        "token",
		"timeout":      "timeout",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("go2ubl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "go2ubl"))
		}
	}

	viper.SetEnvPrefix("GO2UBL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config file:", err)
		}
	}
}

// clientConfig resolves the Go2UBL configuration from viper and secrets.
func clientConfig() types.ClientConfig {
	return types.ClientConfig{
		CompanyAPI:  viper.GetString("company_api"),
		DocumentAPI: viper.GetString("document_api"),
		Identifier:  credential("identifier", loadedSecrets.Identifier),
		Code:        credential("code", loadedSecrets.Code),
		Token:       credential("token", loadedSecrets.Token),
	}
}

// newClient builds a Go2UBL client from the resolved configuration.
func newClient() *go2ubl.Client {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := go2ubl.New(clientConfig())
	c.HTTPClient = &http.Client{Timeout: timeout}
	c.Logger = log
	c.UserAgent = "go2ubl/" + version
	return c
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
