package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/latexnn/modelpost/internal/cliconfig"
	"github.com/latexnn/modelpost/internal/watch"
	plog "github.com/latexnn/modelpost/pkg/log"
	"github.com/latexnn/modelpost/pkg/upload"
)

const longHelp = `Upload a model file to the model-parsing service and print the reply.

The model is posted as multipart/form-data under the "model" field to
/parse_model. The HTTP status code is printed on the first line of stdout,
the raw response body on the second. Logs go to stderr.

Settings come from, in increasing priority: built-in defaults, the config
file ($HOME/.modelpost/config.toml), MODELPOST_* environment variables, and
flags.`

var exampleUsage = strings.TrimSpace(`
  modelpost
  modelpost --model ./l2s.onnx --depth 2
  modelpost --watch --model ./l2s.onnx
  modelpost backward --model ./l2s.onnx --symbol ./symbol.json --layer-node 3 --layer-idx 0 --weight-idx 1
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by the root command and its subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	stdout  io.Writer
	log     zerolog.Logger
}

func newRootCmd(stdout io.Writer, log zerolog.Logger) *cobra.Command {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		stdout: stdout,
		log:    log,
	}

	root := &cobra.Command{
		Use:               "modelpost",
		Short:             "Upload a model to the parsing service and print the response",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runParse,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.modelpost/config.toml)")
	pf.StringVar(&a.cfg.ServiceURL, "service-url", a.cfg.ServiceURL, "base URL of the parsing service")
	pf.StringVar(&a.cfg.ModelPath, "model", a.cfg.ModelPath, "model file to upload")
	pf.IntVar(&a.cfg.Depth, "depth", a.cfg.Depth, "parse depth sent to the service (negative omits it)")
	pf.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP timeout (0 waits indefinitely)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.Flags().BoolVar(&a.cfg.Watch, "watch", a.cfg.Watch, "re-upload whenever the model file changes")
	root.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period after a change before re-uploading")

	root.AddCommand(newBackwardCmd(a))
	return root
}

// loadConfig layers file and environment settings under the flags, then
// validates the result.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.WithLevel(a.log, a.cfg.LogLevel)
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}

// uploader returns an Uploader whose client lives only for this invocation.
func (a *app) uploader() (*upload.Uploader, func()) {
	client := &http.Client{Timeout: a.cfg.HTTPTimeout}
	return upload.New(client, plog.NewZerolog(a.log)), client.CloseIdleConnections
}

// send uploads once and prints the response. Nothing is printed on error.
func (a *app) send(ctx context.Context, u *upload.Uploader, req upload.Request) error {
	resp, err := u.Upload(ctx, req)
	if err != nil {
		return err
	}
	if err := resp.Print(a.stdout); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (a *app) runParse(cmd *cobra.Command, _ []string) error {
	u, closeIdle := a.uploader()
	defer closeIdle()

	req := upload.ParseRequest(a.cfg.ServiceURL, a.cfg.ModelPath, a.cfg.Depth)
	if !a.cfg.Watch {
		return a.send(cmd.Context(), u, req)
	}

	w := watch.New(a.cfg.ModelPath, a.cfg.Debounce, func(ctx context.Context) error {
		return a.send(ctx, u, req)
	}, plog.NewZerolog(a.log))
	return w.Run(cmd.Context())
}
