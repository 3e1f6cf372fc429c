package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/schrittweiter/extended-acf/internal/config"
	"github.com/schrittweiter/extended-acf/internal/prompt"
	"github.com/schrittweiter/extended-acf/pkg/export"
	"github.com/schrittweiter/extended-acf/pkg/logger"
	"github.com/schrittweiter/extended-acf/pkg/orchestrator"
	"github.com/schrittweiter/extended-acf/pkg/registry"
)

// app carries what every command shares. Commands read cfg and log after the
// root PersistentPreRunE populated them.
type app struct {
	files    afero.Fs
	environ  func() []string
	driver   prompt.Driver
	registry *registry.Registry

	configFile string
	cfg        *config.Config
	log        logger.Logger
}

func newApp() *app {
	return &app{
		files:    afero.NewOsFs(),
		environ:  os.Environ,
		driver:   prompt.NewSurveyDriver(),
		registry: registry.New(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "acf",
		Short:         "Build field group definitions for the host plugin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default "+config.DefaultFile+")")
	flags.StringP("source", "s", "", "directory holding definition files")
	flags.String("log-level", "", "log level (debug, info, warn, error, disabled)")
	flags.Bool("log-json", false, "log as JSON")

	root.AddCommand(
		newExportCmd(a),
		newSchemaCmd(a),
		newLintCmd(a),
		newTypesCmd(a),
		newPreviewCmd(a),
		newNewCmd(a),
	)
	return root
}

// setup resolves the configuration and the logger for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	opts := config.LoadOptions{
		Environ: a.environ,
		Flags:   changedFlags(cmd.Flags()),
	}
	dir, file := ".", ""
	if a.configFile != "" {
		dir, file = filepath.Dir(a.configFile), filepath.Base(a.configFile)
	}
	fsys, err := a.dirFS(dir)
	if err != nil {
		return err
	}
	opts.FS, opts.File = fsys, file

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewLogger(&logger.Config{
		Level:      level,
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), a.log))
	a.log.Debug("configuration loaded", "source", cfg.Source, "format", cfg.Format)
	return nil
}

// changedFlags collects the flags set on the command line, keyed by name.
func changedFlags(flags *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(f.Name)
			out[f.Name] = v
		case "stringSlice":
			v, _ := flags.GetStringSlice(f.Name)
			out[f.Name] = v
		default:
			out[f.Name] = f.Value.String()
		}
	})
	return out
}

// dirFS exposes dir of the app file system as an fs.FS.
func (a *app) dirFS(dir string) (fs.FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	return afero.NewIOFS(afero.NewBasePathFs(a.files, abs)), nil
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	opts := []orchestrator.Option{
		orchestrator.WithRegistry(a.registry),
		orchestrator.WithLogger(a.log),
		orchestrator.WithSanitize(a.cfg.Sanitize),
		orchestrator.WithOutputFS(a.files),
	}
	if export.Format(a.cfg.Format) == export.FormatPHP {
		enc, err := export.NewPHPEncoder(export.PHPOptions{
			TemplateDir: a.cfg.PHP.TemplateDir,
			Hook:        a.cfg.PHP.Hook,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithEncoder(export.FormatPHP, enc))
	}
	if a.cfg.Preset != "" {
		fsys, err := a.dirFS(filepath.Dir(a.cfg.Preset))
		if err != nil {
			return nil, err
		}
		preset, err := orchestrator.NewJSONPresetTransformerFromFS(fsys, filepath.Base(a.cfg.Preset))
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithTransformer(preset))
	}
	return orchestrator.New(opts...), nil
}

func (a *app) request() (orchestrator.Request, error) {
	source, err := a.dirFS(a.cfg.Source)
	if err != nil {
		return orchestrator.Request{}, err
	}
	return orchestrator.Request{
		Source: source,
		Keys:   a.cfg.Groups,
		Format: a.cfg.Format,
	}, nil
}

// writeOutput writes data to target, or to w when target is empty.
func (a *app) writeOutput(w io.Writer, target string, data []byte) error {
	if target == "" {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := a.files.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(a.files, target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	a.log.Info("file written", "path", target, "bytes", len(data))
	return nil
}
