package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "task-tracker.com/td/internal/configs"
	apperrors "task-tracker.com/td/internal/errors"
	"task-tracker.com/td/internal/logger"
	repository "task-tracker.com/td/internal/repositories"
	"task-tracker.com/td/internal/services"
)

// app holds what one invocation needs. It is filled by the root command's
// pre-run so that help and shell completion work without touching the
// database.
type app struct {
	loc   *time.Location
	log   *zap.Logger
	db    *gorm.DB
	tasks *services.TaskService
}

func (a *app) open() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	a.log = l.With(zap.String("invocation_id", uuid.NewString()))
	if envErr != nil {
		a.log.Debug(".env file not found, using environment variables")
	}

	db, err := config.NewDatabase(cfg.DatabasePath())
	if err != nil {
		a.log.Error("storage unavailable", zap.String("path", cfg.DatabasePath()), zap.Error(err))
		return err
	}
	a.db = db

	a.tasks = services.NewTaskService(
		repository.NewTaskRepository(db),
		services.WithStrict(cfg.Strict),
		services.WithLocation(a.loc),
		services.WithLogger(a.log),
	)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if err := config.CloseDatabase(a.db); err != nil {
			a.log.Warn("closing database", zap.Error(err))
		}
	}
	if a.log != nil {
		logger.Sync(a.log)
	}
}

// needsStore is false for cobra's built-in help and completion commands.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "td",
		Short:         "A very simple task management cli",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return a.open()
		},
	}

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newNextCmd(a),
		newDoneCmd(a),
		newShowCmd(a),
		newPauseCmd(a),
		newCancelCmd(a),
		newGcCmd(a),
		newExportCmd(a),
	)

	return root
}

// run executes one invocation and returns the process exit code. Business
// errors are reported on stdout and still exit 0; anything else is fatal.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{loc: time.Local}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if apperrors.IsException(err) {
		fmt.Fprintln(stdout, apperrors.Describe(err))
		return 0
	}

	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
