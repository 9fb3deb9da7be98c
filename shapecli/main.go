package shapecli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/version"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)

	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	eraseFlag, err := ms.Opts.Bool("SHAPES_ERASE", "erase", "e", false, "erase every shape once the scenario has run.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	args := ms.Opts.Flags.Args()
	if len(args) > 0 && args[0] == "version" {
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if len(args) > 1 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	outputPath := "-"
	if len(args) == 1 && args[0] != "-" {
		outputPath = ms.AbsPath(args[0])
	}
	ms.Log.Debug.Printf("writing transcript to %s", outputPath)

	return writeTranscript(ctx, ms, outputPath, *eraseFlag)
}

// writeTranscript renders the whole scenario before touching outputPath, so
// a failed or canceled run leaves no file behind.
func writeTranscript(ctx context.Context, ms *xmain.State, outputPath string, erase bool) (err error) {
	defer xdefer.Errorf(&err, "failed to write transcript to %s", outputPath)

	out, err := renderTranscript(ctx, erase)
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, out)
	if err != nil {
		return err
	}
	log.Info(ctx, "wrote transcript", slog.F("path", outputPath), slog.F("bytes", len(out)))
	return nil
}

func renderTranscript(ctx context.Context, erase bool) ([]byte, error) {
	b := &bytes.Buffer{}
	err := newDemo(erase).run(ctx, b)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
