package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prefixbool/pbg"
	"github.com/prefixbool/pbg/internal/config"
	"github.com/prefixbool/pbg/internal/render"
)

func newCheckCommand(configFile *string) *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "check <expr-file>",
		Short: "parse a PBG expression and report syntax/arity errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ExprFile = args[0]
			return runCheck(*configFile, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print the parsed expression tree")
	return cmd
}

func runCheck(configFile string, opts *config.Options) error {
	if err := config.Load(configFile, opts); err != nil {
		return err
	}
	if err := config.Validate(opts); err != nil {
		return err
	}

	runID := uuid.New()
	logger.Printf("run=%s cmd=check file=%s", runID, opts.ExprFile)

	src, err := os.ReadFile(opts.ExprFile)
	if err != nil {
		return err
	}

	expr, err := pbg.Parse(src)
	if err != nil {
		fmt.Println(render.Error(err))
		os.Exit(1)
	}
	defer pbg.Free(expr)

	fmt.Println("ok")
	if opts.Verbose {
		fmt.Println(render.Expr(expr))
	}
	return nil
}
