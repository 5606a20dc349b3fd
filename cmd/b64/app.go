package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gaukas/b64"
	"github.com/gaukas/b64/internal/utils"
	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

const version = "0.1"

// usage is printed verbatim, both by --help and after usage errors.
const usage = `b64

Usage:
    b64 [options] < input

Options:
    -h --help               Show this screen
    -v --version            Display version
    -e --encode             Encode standard input
    -d --decode             Decode standard input
    -w --wrap <cols>        Wrap encoded lines after <cols> characters (0 disables)
    -c --config <file>      Load defaults from a YAML file
       --log-level <level>  Diagnostics on stderr: trace, debug, info, warn, error, off
`

// switchLetters are the short options that take no value.
const switchLetters = "hved"

// errUsage has already been reported to the user.
var errUsage = errors.New("usage error")

func init() {
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Fprintf(cCtx.App.Writer, "%s, version %s\n", cCtx.App.Name, cCtx.App.Version)
	}
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "encode",
			Aliases: []string{"e"},
			Usage:   "encode standard input",
		},
		&cli.BoolFlag{
			Name:    "decode",
			Aliases: []string{"d"},
			Usage:   "decode standard input",
		},
		&cli.IntFlag{
			Name:    "wrap",
			Aliases: []string{"w"},
			Usage:   "wrap encoded lines after `COLS` characters (0 disables)",
		},
		&cli.StringFlag{
			Name:      "config",
			Aliases:   []string{"c"},
			Usage:     "load defaults from YAML `FILE`",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "diagnostics `LEVEL` on stderr",
		},
	}
}

// requested reports whether args ask for the named switch, by long name or
// by its short letter, possibly bundled with other switches as in -hv.
func requested(args []string, long string, short byte) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--"+long || arg == "-"+long:
			return true
		case len(arg) > 1 && arg[0] == '-' && arg[1] != '-':
			letters := arg[1:]
			if strings.Trim(letters, switchLetters) == "" && strings.IndexByte(letters, short) >= 0 {
				return true
			}
		}
	}
	return false
}

// newApp builds the command line for args, where args[0] is the program name.
func newApp(args []string, stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	if len(args) > 0 {
		args = args[1:]
	}

	return &cli.App{
		Name:                   "b64",
		Usage:                  "base64 encode or decode standard input",
		Version:                version,
		Flags:                  newFlags(),
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		CustomAppHelpTemplate:  usage,
		Reader:                 stdin,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Action:                 convert,
		// help and version still win when the rest of the line is unparseable
		OnUsageError: func(cCtx *cli.Context, err error, _ bool) error {
			switch {
			case requested(args, "help", 'h'):
				return cli.ShowAppHelp(cCtx)
			case requested(args, "version", 'v'):
				cli.ShowVersion(cCtx)
				return nil
			}
			return usageError(cCtx, err.Error())
		},
		// exit codes are decided by run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func usageError(cCtx *cli.Context, msg string) error {
	fmt.Fprintf(cCtx.App.ErrWriter, "error: %s\n", msg)
	fmt.Fprint(cCtx.App.ErrWriter, usage)
	return errUsage
}

// settings resolves the effective mode, wrap width and log level. Explicit
// flags win over the config file.
func settings(cCtx *cli.Context) (*Config, error) {
	conf := &Config{}
	if path := cCtx.String("config"); path != "" {
		var err error
		conf, err = loadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case cCtx.Bool("encode"):
		conf.Mode = modeEncode
	case cCtx.Bool("decode"):
		conf.Mode = modeDecode
	}
	if cCtx.IsSet("wrap") {
		conf.Wrap = cCtx.Int("wrap")
	}
	if cCtx.IsSet("log-level") || conf.LogLevel == "" {
		conf.LogLevel = cCtx.String("log-level")
	}

	return conf, nil
}

func convert(cCtx *cli.Context) error {
	if cCtx.Bool("encode") && cCtx.Bool("decode") {
		return usageError(cCtx, "encode and decode options are mutually exclusive.")
	}
	if cCtx.NArg() > 0 {
		return usageError(cCtx, fmt.Sprintf("unexpected argument %q", cCtx.Args().First()))
	}

	conf, err := settings(cCtx)
	if err != nil {
		return err
	}
	if conf.Wrap < 0 {
		return usageError(cCtx, fmt.Sprintf("invalid wrap width %d", conf.Wrap))
	}
	level := hclog.LevelFromString(conf.LogLevel)
	if level == hclog.NoLevel {
		return usageError(cCtx, fmt.Sprintf("invalid log level %q", conf.LogLevel))
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "b64",
		Level:  level,
		Output: cCtx.App.ErrWriter,
	})

	input, err := utils.ReadAll(cCtx.App.Reader)
	if err != nil {
		return errwrap.Wrapf("failed to read standard input: {{err}}", err)
	}
	logger.Debug("read standard input", "bytes", len(input), "mode", conf.Mode)

	var output []byte
	switch conf.Mode {
	case modeEncode:
		output = b64.ToBase64(input)
		logger.Debug("encoded", "in", len(input), "out", len(output))
	case modeDecode:
		output, err = b64.FromBase64(utils.StripLineBreaks(input))
		if err != nil {
			return errwrap.Wrapf("invalid base64 input: {{err}}", err)
		}
		logger.Debug("decoded", "in", len(input), "out", len(output))
		conf.Wrap = 0 // raw bytes are never wrapped
	default:
		logger.Debug("no conversion requested, input discarded")
		return nil
	}

	if err := utils.WriteLine(cCtx.App.Writer, output, conf.Wrap); err != nil {
		return errwrap.Wrapf("failed to write standard output: {{err}}", err)
	}
	return nil
}
