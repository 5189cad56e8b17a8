// Command nexus is the command-line client of the Nexus asset inventory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/form"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/store"
)

const usage = `Usage: nexus [-config file] <command> [flags] [args]

Commands:
  list      list assets (-q search, -status, -type)
  add       create an asset (-subscription presets an active yearly subscription)
  edit      edit an asset: edit [flags] <id>
  delete    delete an asset: delete <id>
  alerts    show subscriptions renewing within 30 days
  print     print a label sheet: print [-pdf] [-all] [-move from:to] [-remove id] [ids...]
  label     print one large label: label [-pdf] <id>
  scan      resolve a code: scan -manual <text> | scan -image <file> [file...]
  ask       ask the assistant about the inventory: ask <question>
  report    show dashboard and subscription figures
  token     mint an access token for the API (-subject, -email)
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nexus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if err := config.LoadDotEnv(""); err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.InitializeWithWriter(cfg.Log.Level, cfg.Log.Format, stderr)

	a := &app{
		cfg: cfg,
		out: stdout,
		ids: form.NewRandomIDGenerator(),
		now: time.Now,
	}
	defer a.close()

	if err := a.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// app carries the state shared by commands of one invocation.
type app struct {
	cfg     *config.Config
	out     io.Writer
	ids     form.IDGenerator
	now     func() time.Time
	adapter store.Adapter
}

// store opens the configured record store on first use.
func (a *app) store(ctx context.Context) (store.Adapter, error) {
	if a.adapter != nil {
		return a.adapter, nil
	}
	adapter, err := store.New(ctx, a.cfg.Store)
	if err != nil {
		return nil, err
	}
	a.adapter = adapter
	return adapter, nil
}

func (a *app) close() {
	if a.adapter != nil {
		if err := a.adapter.Close(); err != nil {
			logger.Warn("Failed to close store", "error", err)
		}
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list":
		return a.list(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "edit":
		return a.edit(ctx, args)
	case "delete":
		return a.remove(ctx, args)
	case "alerts":
		return a.alerts(ctx, args)
	case "print":
		return a.print(ctx, args)
	case "label":
		return a.label(ctx, args)
	case "scan":
		return a.scan(ctx, args)
	case "ask":
		return a.ask(ctx, args)
	case "report":
		return a.report(ctx, args)
	case "token":
		return a.token(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
