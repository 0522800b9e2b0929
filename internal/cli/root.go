// Package cli implements the dualdiff command line tool.
//
// Every subcommand reads its settings through viper under a key named after
// the command, so a setting can come from a flag (--lr), the environment
// (DUALDIFF_DESCEND_LR) or a config file section (descend.lr), in that
// order of precedence.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// Version is the tool version reported by the version command.
const Version = "v0.1.0"

const envPrefix = "DUALDIFF"

// NewRootCommand builds the dualdiff command tree.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var configFile string
	root := &cobra.Command{
		Use:           "dualdiff",
		Short:         "Forward-mode automatic differentiation toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "read config %q", configFile)
				}
				klog.V(1).InfoS("loaded config", "file", v.ConfigFileUsed())
			}
			return bindFlags(v, cmd)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(
		newVersionCommand(),
		newEvalCommand(v),
		newDescendCommand(v),
		newIntegrateCommand(v),
		newNewtonCommand(v),
	)
	return root
}

// bindFlags binds cmd's own flags under "<command>.<flag>".
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(key(cmd, f.Name), f)
	})
	return errors.Wrap(err, "bind flags")
}

func key(cmd *cobra.Command, name string) string {
	return cmd.Name() + "." + name
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dualdiff %s\n", Version)
			return nil
		},
	}
}
