package client

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-stego-channel/internal/adapter"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/models"
)

type App struct {
	services  *service.ClientServices
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	clipboard Clipboard
	passwords PasswordReader

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI. serverAdapter may be nil, in which case exchange
// and --remote fail with [ErrNoServer].
func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services:  services,
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		clipboard: systemClipboard{},
		passwords: newTerminalPasswordReader(os.Stdin, os.Stderr),
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger,
	}, nil
}

func (a *App) Run() error {
	return a.Execute(context.Background(), os.Args[1:])
}

// Execute runs the command line args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(a.logger.WithContext(ctx))
	if err != nil {
		a.logger.Err(err).Strs("args", redactArgs(args)).Msg("command failed")
	}
	return err
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stego",
		Short:         "Hide encrypted messages in text, images and audio",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		a.hideCmd(),
		a.revealCmd(),
		a.capacityCmd(),
		a.analyzeCmd(),
		a.exchangeCmd(),
		a.historyCmd(),
		a.versionCmd(),
	)
	return root
}

// redactArgs drops the value following a password flag.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case "-p", "--password", "-m", "--message":
			if i+1 < len(out) {
				out[i+1] = "***"
				i++
			}
		}
	}
	return out
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
