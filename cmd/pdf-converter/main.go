package main

import (
	"os"
	"strings"

	"github.com/apcamargo/pdf-converter/internal/config"
	"github.com/apcamargo/pdf-converter/internal/env"
	"github.com/apcamargo/pdf-converter/internal/util"
	"github.com/apcamargo/pdf-converter/pkg/convert"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	var (
		quiet  bool
		pages  []int
		scale  float64
		prefix string
		logger *zap.SugaredLogger
	)

	cmd := &cobra.Command{
		Use:           "pdf-converter FORMAT INPUT [OUTPUT]",
		Short:         "Convert PDF files to PNG or SVG",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger = util.NewLogger(cfg.ENV, quiet)

			output := cfg.Converter.OutputDir
			if len(args) == 3 {
				output = args[2]
			}

			// A prefix flag set to "" is not the same as no prefix
			// flag: the empty prefix sanitizes to the fallback while
			// an absent one is inferred from the input name.
			var userPrefix *string
			if cmd.Flags().Changed("prefix") {
				userPrefix = &prefix
			}

			return run(logger, runOptions{
				format:     args[0],
				input:      args[1],
				output:     output,
				scale:      scale,
				pages:      pages,
				userPrefix: userPrefix,
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", cfg.Converter.Quiet, "suppress informational logging (only errors printed)")
	cmd.Flags().IntSliceVarP(&pages, "page", "p", nil, "pages to convert, 1-based, repeatable or comma separated (default: all pages)")
	cmd.Flags().Float64VarP(&scale, "scale", "s", cfg.Converter.Scale, "scale factor applied to outputs")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for output files, inferred from the input name when omitted")

	if err := cmd.Execute(); err != nil {
		if logger == nil {
			logger = util.NewLogger(cfg.ENV, false)
		}
		if kind := convert.KindOf(err); kind != "" {
			logger.Errorw(err.Error(), "tag", string(kind))
		} else {
			logger.Error(err.Error())
		}
		_ = logger.Sync()
		os.Exit(1)
	}

	if logger != nil {
		_ = logger.Sync()
	}
}

type runOptions struct {
	format     string
	input      string
	output     string
	scale      float64
	pages      []int
	userPrefix *string
}

func run(logger *zap.SugaredLogger, opts runOptions) error {
	format, err := convert.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	outputExisted := true
	if _, err := os.Stat(opts.output); os.IsNotExist(err) {
		outputExisted = false
	}
	if err := os.MkdirAll(opts.output, 0755); err != nil {
		return &convert.Error{Kind: convert.ErrFileSystem, Message: "failed to create output directory", Err: err}
	}
	if !outputExisted {
		logger.Infof("Created output directory: %s", opts.output)
	}

	doc, err := convert.OpenDocument(opts.input)
	if err != nil {
		return err
	}
	defer doc.Close()

	selection, err := convert.ValidatePages(opts.pages, doc.PageCount())
	if err != nil {
		return err
	}

	converter := convert.NewConverter(doc, logger)
	written, err := converter.Convert(convert.Options{
		Format:    format,
		OutputDir: opts.output,
		Scale:     opts.scale,
		Prefix:    convert.ResolvePrefix(opts.userPrefix, opts.input),
		Pages:     selection,
	})
	if err != nil {
		return err
	}

	suffix := "s"
	if written == 1 {
		suffix = ""
	}
	logger.Infof("Wrote %d %s file%s to %s (input: %s)",
		written, strings.ToUpper(string(format)), suffix, opts.output, opts.input)

	return nil
}
