package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/xtf8/hexdump"
	"github.com/wippyai/xtf8/jsonesc"
	"github.com/wippyai/xtf8/stream"
	"github.com/wippyai/xtf8/transcoder"
)

func main() {
	var (
		decode      = flag.BoolP("decode", "d", false, "decode mode instead of encode")
		infile      = flag.StringP("input", "i", "", "input file (stdin if unspecified)")
		outfile     = flag.StringP("output", "o", "", "output file (stdout if unspecified)")
		jsonMode    = flag.BoolP("json", "j", false, "JSON-escape the output (encode) or unescape the input (decode)")
		hexMode     = flag.BoolP("hexdump", "x", false, "hexdump the output instead of writing it raw")
		abort       = flag.BoolP("abort", "a", false, "fail on collisions or malformed input instead of replacing")
		force       = flag.BoolP("force", "f", false, "allow writing raw binary output to a terminal")
		debug       = flag.BoolP("debug", "D", false, "show verbose debug messages")
		interactive = flag.BoolP("interactive", "t", false, "interactive mode with TUI")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "XTF8 codec utility")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "usage: xtf8 [OPTIONS]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "ERROR: received extra arguments.")
		flag.Usage()
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		decode:  *decode,
		infile:  *infile,
		outfile: *outfile,
		json:    *jsonMode,
		hex:     *hexMode,
		force:   *force,
		debug:   *debug,
	}
	if *abort {
		opts.policy = transcoder.Abort
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	infile  string
	outfile string
	policy  transcoder.Policy
	decode  bool
	json    bool
	hex     bool
	force   bool
	debug   bool
}

func run(opts options) error {
	var logger *zap.Logger
	if opts.debug {
		cfg := zap.NewDevelopmentConfig()
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
		transcoder.SetLogger(logger)
		transcoder.SetDebug(true)

		mode := "encode"
		if opts.decode {
			mode = "decode"
		}
		logger.Debug("starting",
			zap.String("mode", mode),
			zap.String("policy", opts.policy.String()),
			zap.String("input", fileOrStd(opts.infile, "<stdin>")),
			zap.String("output", fileOrStd(opts.outfile, "<stdout>")),
			zap.Bool("json", opts.json),
		)
	}

	// Read the whole source
	in := os.Stdin
	if opts.infile != "" {
		f, err := os.Open(opts.infile)
		if err != nil {
			return fmt.Errorf("open %s: %w", opts.infile, err)
		}
		defer f.Close()
		in = f
	}
	input, err := stream.ReadAll(in)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("read input", zap.Int("bytes", len(input)))
		fmt.Fprint(os.Stderr, hexdump.String(input))
	}

	// Decode mode with -j unescapes the input before transcoding.
	if opts.json && opts.decode {
		input, err = jsonesc.UnescapeBytes(input)
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Debug("JSON-unescaped input", zap.Int("bytes", len(input)))
			fmt.Fprint(os.Stderr, hexdump.String(input))
		}
	}

	var output []byte
	if opts.decode {
		output, err = transcoder.DecodeBytes(input, opts.policy)
	} else {
		output, err = transcoder.EncodeBytes(input, opts.policy)
	}
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("transcoded", zap.Int("in", len(input)), zap.Int("out", len(output)))
		fmt.Fprint(os.Stderr, hexdump.String(output))
	}

	// Encode mode with -j escapes the transcoded output.
	if opts.json && !opts.decode {
		output = jsonesc.EscapeBytes(output)
		if logger != nil {
			logger.Debug("JSON-escaped output", zap.Int("bytes", len(output)))
			fmt.Fprint(os.Stderr, hexdump.String(output))
		}
	}

	out := os.Stdout
	if opts.outfile != "" {
		f, err := os.Create(opts.outfile)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.outfile, err)
		}
		defer f.Close()
		out = f
	}

	if opts.hex {
		return hexdump.Dump(out, output)
	}

	// Decoded output is arbitrary binary; keep it off terminals unless
	// forced.
	if opts.decode && !opts.force && opts.outfile == "" && term.IsTerminal(int(out.Fd())) {
		return fmt.Errorf("refusing to write binary output to a terminal (use -f to force, or -x for a hexdump)")
	}

	return stream.WriteAll(out, output)
}

func fileOrStd(name, std string) string {
	if name == "" {
		return std
	}
	return name
}
