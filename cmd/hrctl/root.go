package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Command line client for the hrdesk API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("server", "http://localhost:8080", "base URL of the hrdesk server")
	cmd.PersistentFlags().String("token", "", "bearer token for authenticated endpoints")

	viper.SetEnvPrefix("HRDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("server", cmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("token", cmd.PersistentFlags().Lookup("token"))

	cmd.AddCommand(employeesCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(tokenCmd())
	return cmd
}
