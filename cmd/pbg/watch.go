package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prefixbool/pbg"
	"github.com/prefixbool/pbg/internal/config"
	"github.com/prefixbool/pbg/internal/render"
)

func newWatchCommand(configFile *string) *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "watch <expr-file>",
		Short: "re-parse and re-evaluate a PBG expression on file change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ExprFile = args[0]
			return runWatch(*configFile, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DictFile, "dict", "", "variable bindings file (.yaml or .db)")
	return cmd
}

func runWatch(configFile string, opts *config.Options) error {
	if err := config.Load(configFile, opts); err != nil {
		return err
	}
	if err := config.Validate(opts); err != nil {
		return err
	}

	runID := uuid.New()
	logger.Printf("run=%s cmd=watch file=%s dict=%s", runID, opts.ExprFile, opts.DictFile)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.ExprFile); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	evalOnce(opts)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				evalOnce(opts)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("run=%s watch error: %v", runID, watchErr)
		}
	}
}

func evalOnce(opts *config.Options) {
	src, err := os.ReadFile(opts.ExprFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	expr, err := pbg.Parse(src)
	if err != nil {
		fmt.Println(render.Error(err))
		return
	}
	defer pbg.Free(expr)

	lookup, closeDict, err := openDict(opts.DictFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer closeDict()

	result, err := pbg.Evaluate(expr, lookup)
	if err != nil {
		fmt.Println(render.Error(err))
		return
	}
	fmt.Println(result)
}
