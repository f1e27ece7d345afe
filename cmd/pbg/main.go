// Command pbg is the CLI wrapper around package pbg: parse, evaluate, and
// watch PBG expression files against a variable dictionary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "pbg",
		Short: "compile and evaluate Prefix Boolean Grammar expressions",
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML config file")

	root.AddCommand(newEvalCommand(&configFile))
	root.AddCommand(newCheckCommand(&configFile))
	root.AddCommand(newWatchCommand(&configFile))
	return root
}

var logger = log.New(os.Stderr, "", log.LstdFlags)
