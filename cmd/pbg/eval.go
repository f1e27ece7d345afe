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

func newEvalCommand(configFile *string) *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "eval <expr-file>",
		Short: "parse and evaluate a PBG expression against a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ExprFile = args[0]
			return runEval(*configFile, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DictFile, "dict", "", "variable bindings file (.yaml or .db)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit non-zero when the result is false")
	return cmd
}

func runEval(configFile string, opts *config.Options) error {
	if err := config.Load(configFile, opts); err != nil {
		return err
	}
	if err := config.Validate(opts); err != nil {
		return err
	}

	runID := uuid.New()
	logger.Printf("run=%s cmd=eval file=%s dict=%s", runID, opts.ExprFile, opts.DictFile)

	src, err := os.ReadFile(opts.ExprFile)
	if err != nil {
		return err
	}

	expr, err := pbg.Parse(src)
	if err != nil {
		return fmt.Errorf("%s", render.Error(err))
	}
	defer pbg.Free(expr)

	lookup, closeDict, err := openDict(opts.DictFile)
	if err != nil {
		return err
	}
	defer closeDict()

	result, err := pbg.Evaluate(expr, lookup)
	if err != nil {
		return fmt.Errorf("%s", render.Error(err))
	}

	fmt.Println(result)
	if opts.Strict && !result {
		os.Exit(1)
	}
	return nil
}
