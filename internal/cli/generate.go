package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/goalgrid/goalgrid/pkg/config"
	"github.com/goalgrid/goalgrid/pkg/plan"
	"github.com/goalgrid/goalgrid/pkg/render"
)

// generateOpts holds the command-line options for a generation run.
type generateOpts struct {
	configPath string // path to the YAML configuration
	output     string // output filename override, empty = use config
	year       int    // year shown in the header and weekly date labels
}

// runGenerate performs one full generation pass: load config, compose
// the page, write the file. Everything that can fail does so before the
// output file is touched.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", opts.configPath)

	if plan.StartWeek(opts.year) == 2 {
		logger.Info("53-week ISO year; grid starts at ISO week 2", "year", opts.year)
	}

	doc, err := render.Generate(cfg, opts.year)
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(cfg, opts.output)
	if err := doc.WriteFile(outPath); err != nil {
		return err
	}

	prog.done("Generated goal tracker")
	printSuccess("PDF generated successfully")
	printFile(outPath)
	return nil
}

// resolveOutputPath determines where the PDF is written. An override
// containing a path separator is used verbatim; a bare filename override
// still lands in the configured output directory.
func resolveOutputPath(cfg *config.Config, override string) string {
	if override == "" {
		return filepath.Join(cfg.Output.Directory, cfg.Output.Filename)
	}
	if strings.ContainsRune(override, filepath.Separator) {
		return override
	}
	return filepath.Join(cfg.Output.Directory, override)
}
