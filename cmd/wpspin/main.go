// wpspin prints the default WPS PIN of a vulnerable Belkin router.
//
// Usage:
//
//	wpspin [--log-level level] <bssid> <serial>
//
// Only the last four characters of the BSSID and of the serial number are
// used. The BSSID must be given without colon or hyphen delimiters.
// Arguments starting with a hyphen are parsed as flags unless they follow
// "--":
//
//	wpspin -- 0506 -4567
//
// Exit codes:
//
//	0: the PIN was printed
//	1: wrong number of arguments, an argument shorter than four characters,
//	   a delimited BSSID or any other command line error
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/wpspin"
	"github.com/urfave/cli/v3"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// exitError carries an exit code for a failure that has already been
// reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "\nUsage: %s <bssid> <serial>\n\n", name)
	fmt.Fprintf(w, "Only the last 2 octets of the BSSID are required.\n")
	fmt.Fprintf(w, "Only the last 4 digits of the serial number are required.\n\n")
	fmt.Fprintf(w, "Example:\n\n")
	fmt.Fprintf(w, "\t$ %s 010203040506 1234GB1234567\n", name)
	fmt.Fprintf(w, "\t$ %s 0506 4567\n", name)
	fmt.Fprintf(w, "\t$ %s -- 0506 -4567\n\n", name)
	fmt.Fprintf(w, "Use -- before a serial number that starts with a hyphen.\n\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func generate(_ context.Context, cmd *cli.Command) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cmd.String("log-level")),
	}))

	if cmd.Args().Len() != 2 { //nolint:gomnd
		usage(cmd.ErrWriter, cmd.Name)

		return &exitError{exitFailure}
	}

	mac, serial := cmd.Args().Get(0), cmd.Args().Get(1)

	pin, err := wpspin.Compute(mac, serial)
	if err != nil {
		logger.Debug("rejected input", "err", err)
		fmt.Fprintln(cmd.ErrWriter, "MAC or serial number too short!")

		return &exitError{exitFailure}
	}

	if err := wpspin.CheckMAC(mac); err != nil {
		logger.Debug("rejected input", "err", err)
		fmt.Fprintln(cmd.ErrWriter, "Do not include colon or hyphen delimiters in the MAC address!")

		return &exitError{exitFailure}
	}

	logger.Debug("computed pin", "seed", pin.Seed(), "checksum", pin.Checksum())

	fmt.Fprintf(cmd.Writer, "Default pin: %s\n", pin)

	return nil
}

func newCommand(name string, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "print the default WPS PIN of a Belkin router",
		ArgsUsage: "<bssid> <serial>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("WPSPIN_LOG_LEVEL"),
			},
		},
		Action:    generate,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are mapped in run rather than by os.Exit inside the
		// framework
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	name := "wpspin"
	if len(args) > 0 {
		name = filepath.Base(args[0])
	}

	if err := newCommand(name, stdout, stderr).Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}

		fmt.Fprintf(stderr, "%s: %v\n", name, err)

		return exitFailure
	}

	return exitSuccess
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
