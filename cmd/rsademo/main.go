// Command rsademo generates seeded RSA key pairs and encrypts or decrypts
// messages with them from the command line.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// app is the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  logging.Logger
}

// newRootCmd builds a fresh command tree with its own viper instance, so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logging.Nop()}

	a.v.SetDefault("log.level", "warn")
	a.v.SetDefault("log.format", "text")
	a.v.SetEnvPrefix("RSADEMO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "rsademo",
		Short: "Seeded textbook RSA for demos and teaching.",
		Long: `rsademo derives RSA key pairs deterministically from two 32-byte seeds
and encrypts messages byte by byte with them.

The same seeds always give the same key pair. Do not use it to protect
anything.`,
		Version:           rsademo.WrapperVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./rsademo.yaml if present)")
	cmd.PersistentFlags().String("log-level", "warn", `log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log-format", "text", `log format ("text", "json")`)
	_ = a.v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(
		a.keygenCmd(),
		a.identityCmd(),
		a.encryptCmd(),
		a.decryptCmd(),
		a.primeCmd(),
	)
	return cmd
}

// setup reads the config file and builds the logger before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	} else {
		a.v.SetConfigName("rsademo")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	h, err := logging.NewHandler(cmd.ErrOrStderr(), a.v.GetString("log.format"), a.v.GetString("log.level"))
	if err != nil {
		return err
	}
	a.logger = logging.New(slog.New(h)).With("command", cmd.Name())
	return nil
}

// bind attaches local flags of the running command to viper keys. Binding at
// run time lets several subcommands share a key such as key.file.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return nil
}
