package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-secure-profile/internal/adapter"
	"github.com/MKhiriev/go-secure-profile/internal/client"
	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-secure-profile-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		client.Usage(os.Stderr)
		return 2
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app, err := client.NewApp(serverAdapter, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Strs("args", redactArgs(args)).Msg("client command failed")
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			client.Usage(os.Stderr)
			return 2
		}
		return 1
	}

	return 0
}

// redactArgs hides the values of password flags before logging.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || (name != "password" && name != "password2") {
			continue
		}
		if hasValue {
			out[i] = "-" + name + "=***"
		} else if i+1 < len(out) {
			out[i+1] = "***"
		}
	}

	return out
}
