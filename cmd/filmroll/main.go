package main

import (
	"context"
	"fmt"
	"os"

	"filmroll/internal/app"
	"filmroll/internal/config"
	"filmroll/internal/domain"
	apperrors "filmroll/internal/errors"
	"filmroll/internal/infra/confdb"
	"filmroll/internal/infra/exif"
	"filmroll/internal/infra/fs"
	"filmroll/internal/infra/importjob"
	"filmroll/internal/infra/library"
	"filmroll/internal/infra/thumb"
	"filmroll/internal/logging"
	"filmroll/internal/presentation"
	"filmroll/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "filmroll",
		Short:         "Import photographs into a filmroll library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(newImportCmd(&verbose))
	root.AddCommand(newGroupsCmd())
	return root
}

type importFlags struct {
	filter    string
	copyMode  bool
	datetime  string
	jobcode   string
	baseDir   string
	subdir    string
	filename  string
	expandDry bool
}

func newImportCmd(verbose *bool) *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import [paths...]",
		Short: "Import files or folders; with no paths, open the interactive dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(*verbose)
			if err != nil {
				return err
			}
			defer env.close()

			if len(args) == 0 {
				return runImportDialog(env)
			}
			return runImport(cmd.Context(), env, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "all", "file filter: all, raw or raster")
	cmd.Flags().BoolVar(&flags.copyMode, "copy", false, "copy files into a new filmroll instead of importing in place")
	cmd.Flags().StringVar(&flags.datetime, "datetime", "", "override the taken datetime (ISO 8601), copy mode only")
	cmd.Flags().StringVar(&flags.jobcode, "jobcode", "", "jobcode for $(JOBCODE) in the naming patterns")
	cmd.Flags().StringVar(&flags.baseDir, "base", "", "base directory pattern for copied files")
	cmd.Flags().StringVar(&flags.subdir, "subdir", "", "subdirectory pattern for copied files")
	cmd.Flags().StringVar(&flags.filename, "filename", "", "filename pattern for copied files")
	cmd.Flags().BoolVar(&flags.expandDry, "dry-run", false, "list what would be imported and stop")
	return cmd
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Browse the darkroom module groups panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(tui.NewGroupsModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := program.Run()
			return err
		},
	}
}

// env bundles the wired collaborators a command needs.
type env struct {
	cfg       config.Config
	logger    logging.Logger
	conf      *confdb.Store
	index     *library.Index
	traverser app.Traverser
	builder   app.Builder
	previewer app.Previewer
}

func newEnv(verbose bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidConfig, "config", "", err)
	}
	if cfg.Verbose {
		verbose = true
	}
	logger := logging.New(os.Stderr, verbose)

	conf, err := confdb.Open(cfg.ConfDBPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.IOFailure, "open", cfg.ConfDBPath, err)
	}
	index, err := library.Open(cfg.LibraryDBPath)
	if err != nil {
		conf.Close()
		return nil, apperrors.Wrap(apperrors.IOFailure, "open", cfg.LibraryDBPath, err)
	}

	filesystem := fs.OSFS{}
	exifReader := exif.Reader{}
	job := &importjob.Job{
		FS:      filesystem,
		Exif:    exifReader,
		Library: index,
		Conf:    conf,
		Logger:  logger,
	}

	return &env{
		cfg:       cfg,
		logger:    logger,
		conf:      conf,
		index:     index,
		traverser: app.Traverser{FS: filesystem, Logger: logger},
		builder: app.Builder{
			Conf:   conf,
			Job:    job,
			Views:  darkroom{logger: logger, index: index},
			Logger: logger,
		},
		previewer: app.Previewer{
			FS:      filesystem,
			Thumbs:  thumb.Provider{},
			Probe:   exifReader,
			Library: index,
			Logger:  logger,
		},
	}, nil
}

func (e *env) close() {
	e.index.Close()
	e.conf.Close()
}

func runImportDialog(e *env) error {
	start, err := os.Getwd()
	if err != nil {
		start = "/"
	}
	model := tui.NewModel(tui.ImportConfig{
		StartDir:  start,
		Traverser: e.traverser,
		Builder:   e.builder,
		Previewer: e.previewer,
		Conf:      e.conf,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	done, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if done.Phase == tui.PhaseError {
		return done.Err
	}
	if done.Phase == tui.PhaseDone {
		printer := presentation.Printer{Writer: os.Stdout, Verbose: e.cfg.Verbose}
		printer.PrintResult(done.Request, done.Result)
	}
	return nil
}

func runImport(ctx context.Context, e *env, flags importFlags, paths []string) error {
	filter, err := namedFilter(flags.filter)
	if err != nil {
		return err
	}

	items := e.traverser.Expand(paths, filter)
	printer := presentation.Printer{Writer: os.Stdout, Verbose: e.cfg.Verbose}
	printer.PrintExpansion(items, filter)
	if flags.expandDry {
		return nil
	}

	state := app.DialogState{
		Items:           items,
		Duplicate:       flags.copyMode,
		DatetimeRaw:     flags.datetime,
		Jobcode:         stickyFlag(e, flags.jobcode, app.ConfJobcode),
		BaseDirectory:   stickyFlag(e, flags.baseDir, app.ConfBasePattern),
		SubdirPattern:   stickyFlag(e, flags.subdir, app.ConfSubdirPattern),
		FilenamePattern: stickyFlag(e, flags.filename, app.ConfFilePattern),
		LastDirectory:   lastDirectory(paths),
	}
	req, err := e.builder.Build(state)
	if err != nil {
		return err
	}

	e.conf.SetString(app.ConfLastDirectory, state.LastDirectory)
	e.conf.SetBool(app.ConfImportCopy, state.Duplicate)
	e.conf.SetString(app.ConfJobcode, state.Jobcode)

	res, err := e.builder.Dispatch(ctx, req)
	if err != nil {
		return err
	}
	printer.PrintResult(req, res)
	return nil
}

// stickyFlag prefers the flag but falls back to the last value the conf
// store remembers, mirroring how the dialog restores its fields.
func stickyFlag(e *env, value, confKey string) string {
	if value != "" {
		return value
	}
	return e.conf.GetString(confKey)
}

// lastDirectory picks the folder the collection should point at after an
// in-place import: the first directory among the selected paths.
func lastDirectory(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return ""
}

func namedFilter(name string) (domain.FileFilter, error) {
	switch name {
	case "all", "":
		return domain.FilterAllImages, nil
	case "raw":
		return domain.FilterRawOnly, nil
	case "raster":
		return domain.FilterRasterOnly, nil
	default:
		return domain.FileFilter{}, apperrors.Wrap(apperrors.InvalidConfig, "filter", name,
			fmt.Errorf("unknown filter %q", name))
	}
}

// darkroom is the view switcher for a CLI session: there is no darkroom to
// raise, so it reports where the image went instead.
type darkroom struct {
	logger logging.Logger
	index  *library.Index
}

func (d darkroom) SwitchToDarkroom(imageID int64) {
	folder, err := d.index.FilmrollFolder(imageID)
	if err != nil || folder == "" {
		d.logger.Infof("Image #%d ready for the darkroom", imageID)
		return
	}
	d.logger.Infof("Image #%d ready for the darkroom (%s)", imageID, folder)
}
