package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/samvad-hq/interaction-admin/internal/app"
	"github.com/samvad-hq/interaction-admin/internal/config"
	"github.com/samvad-hq/interaction-admin/internal/logger"
	"github.com/samvad-hq/interaction-admin/internal/output"
	"github.com/samvad-hq/interaction-admin/pkg/interaction"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "interaction-admin: %s\n", output.DescribeError(err))
		os.Exit(1)
	}
}

func run(argv []string) error {
	cli := kingpin.New("interaction-admin", "Admin console for the interaction service.")
	outputFormat := cli.Flag("output", "Output format.").Short('o').Enum("json", "yaml", "raw")

	opsCmd := cli.Command("ops", "List the available operations.")

	callCmd := cli.Command("call", "Invoke one operation.")
	var flags callFlags
	callCmd.Arg("operation", "Operation name, see `ops`.").Required().StringVar(&flags.operation)
	callCmd.Flag("id", "Primary path identifier.").StringVar(&flags.id)
	callCmd.Flag("sub-id", "Secondary path identifier.").StringVar(&flags.subID)
	callCmd.Flag("ids", "Target identifier, repeatable.").StringsVar(&flags.ids)
	callCmd.Flag("param", "Query parameter key=value, repeatable.").StringMapVar(&flags.params)
	callCmd.Flag("field", "Named field key=value, repeatable.").StringMapVar(&flags.fields)
	callCmd.Flag("body", "JSON body file, - for stdin.").StringVar(&flags.bodyFile)
	callCmd.Flag("file", "Attachment to upload.").ExistingFileVar(&flags.file)
	callCmd.Flag("reason", "Moderation reason.").StringVar(&flags.reason)

	historyCmd := cli.Command("history", "Show recently issued operations.")
	limit := historyCmd.Flag("limit", "Maximum number of entries.").Default("20").Int()

	command, err := cli.Parse(argv)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *outputFormat != "" {
		cfg.OutputFormat = *outputFormat
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("interaction-admin starting", "config", map[string]any{
		"base_url": cfg.BaseURL,
		"env":      cfg.Env,
		"journal":  cfg.JournalType,
		"command":  command,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console, err := app.NewConsole(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize console", "error", err.Error())
		return err
	}
	defer console.Close()

	switch command {
	case opsCmd.FullCommand():
		return console.Operations()
	case historyCmd.FullCommand():
		return console.History(*limit)
	case callCmd.FullCommand():
		args, closeFn, err := flags.args(os.Stdin)
		if err != nil {
			return err
		}
		defer closeFn()
		return console.Call(ctx, interaction.Operation(flags.operation), args)
	}
	return fmt.Errorf("unknown command %q", command)
}
