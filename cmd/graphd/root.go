// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphd/internal/config"
)

// newRootCmd builds the command tree around one viper instance so flags,
// environment and config file resolve through the same lookup.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "graphd",
		Short:         "Graph construction and analysis service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "logfmt", "stdout log encoding: logfmt or json")
	_ = v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	load := func() (*config.Config, error) {
		return config.Load(v, cfgFile)
	}
	root.AddCommand(newServeCmd(v, load), newAnalyzeCmd(load))

	return root
}
