package commands

import (
	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/config"
	"github.com/bird-chinese-community/bird2-autotype/internal/i18n"
	"github.com/bird-chinese-community/bird2-autotype/internal/log"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "birdat",
	Short: "birdat - BIRD2 auto type completion",
	Long: `birdat scans BIRD 2.17+ config files for functions lacking an explicit
return-type annotation, infers the type from their return statements, and
rewrites the function header to declare it.

Commands:
  process     Annotate config files (stdout or in-place)
  check       Report functions still missing annotations
  init        Set up configuration interactively

Supported types:
  int:     return 1;
  pair:    return (1, 2);        ->  pair (int, int)
  ip:      return 1.2.3.4;
  prefix:  return 1.2.3.4/32;    return net;
  string:  return "hello";
  set:     return {1, 2, 3};
  bool:    return true;          (default type)

Void functions remain unchanged.

Use "birdat [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(processCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(initCmd)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
	RootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON lines")
}

// setup loads configuration and prepares the logger and message catalog for a
// command invocation.
func setup(cmd *cobra.Command) (*config.Config, log.Logger, i18n.Messages, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, i18n.Messages{}, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}

	lg := log.Default()
	if cfg.Verbose {
		lg.SetLevel(log.DebugLevel)
	}
	if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs {
		lg.SetJSONOutput(true)
	}

	return cfg, lg, i18n.For(cfg.Language), nil
}
