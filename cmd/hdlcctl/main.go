package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/hdlcctl/internal/config"
	"github.com/danmuck/hdlcctl/internal/hdlc"
	"github.com/danmuck/hdlcctl/internal/logging"
)

const usage = `usage: hdlcctl <command> [flags]

commands:
  encode   build one frame and print its wire encoding as hex
  decode   parse one hex-encoded frame and print its fields
  control  print a packed control byte
`

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hdlcctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:], out)
	case "decode":
		return runDecode(args[1:], out)
	case "control":
		return runControl(args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runEncode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	configPath := fs.String("config", "", "toml config file")
	address := fs.Int("address", -1, "frame address byte (config default when unset)")
	kind := fs.String("kind", "i", "frame kind: i, s, or u")
	ns := fs.Uint("ns", 0, "send sequence number")
	pf := fs.Uint("pf", 0, "poll/final bit")
	nr := fs.Uint("nr", 0, "receive sequence number")
	code := fs.String("code", "", "s/u function code (rr, rej, rnr, srej, snrm, sabm, ...)")
	info := fs.String("info", "", "information field as hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	addr := cfg.DefaultAddress
	if *address >= 0 {
		if *address > 0xFF {
			return fmt.Errorf("address %d out of range 0..255", *address)
		}
		addr = byte(*address)
	}

	ctrl, err := buildControl(*kind, *code, byte(*ns), byte(*pf), byte(*nr))
	if err != nil {
		return err
	}

	payload, err := parseHexBytes(*info)
	if err != nil {
		return fmt.Errorf("parse info: %w", err)
	}

	f := &hdlc.Frame{Address: addr, Control: ctrl}
	if err := f.SetInfo(payload); err != nil {
		return fmt.Errorf("set info: %w", err)
	}

	codec := hdlc.New(hdlc.WithMaxInfoLen(cfg.MaxInfoLen), hdlc.WithLogger(log.Logger))
	buf := make([]byte, hdlc.MaxEncodedLen(f.InfoLen()))
	n, err := codec.Encode(f, buf)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	fmt.Fprintf(out, "%X\n", buf[:n])
	return nil
}

func runDecode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	configPath := fs.String("config", "", "toml config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("decode expects one hex-encoded frame argument")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	wire, err := parseHexBytes(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse frame: %w", err)
	}

	codec := hdlc.New(hdlc.WithMaxInfoLen(cfg.MaxInfoLen), hdlc.WithLogger(log.Logger))
	f, err := codec.Decode(wire)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintf(out, "address: 0x%02X\n", f.Address)
	fmt.Fprintf(out, "control: 0x%02X\n", f.Control)
	if f.InfoLen() > 0 {
		fmt.Fprintf(out, "info:    %X\n", f.Info())
	} else {
		fmt.Fprintln(out, "info:    (empty)")
	}
	return nil
}

func runControl(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("control", flag.ContinueOnError)
	kind := fs.String("kind", "i", "frame kind: i, s, or u")
	ns := fs.Uint("ns", 0, "send sequence number")
	pf := fs.Uint("pf", 0, "poll/final bit")
	nr := fs.Uint("nr", 0, "receive sequence number")
	code := fs.String("code", "", "s/u function code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl, err := buildControl(*kind, *code, byte(*ns), byte(*pf), byte(*nr))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "0x%02X\n", ctrl)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

func buildControl(kind, code string, ns, pf, nr byte) (byte, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "i":
		return hdlc.NewIFrameControl(ns, pf, nr), nil
	case "s":
		sc, err := parseSFunction(code)
		if err != nil {
			return 0, err
		}
		return hdlc.NewSFrameControl(sc, pf, nr), nil
	case "u":
		uc, err := parseUFunction(code)
		if err != nil {
			return 0, err
		}
		return hdlc.NewUFrameControl(uc, pf)
	default:
		return 0, fmt.Errorf("unknown frame kind %q", kind)
	}
}

func parseSFunction(code string) (hdlc.SFunction, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "rr":
		return hdlc.SCodeRR, nil
	case "rej":
		return hdlc.SCodeREJ, nil
	case "rnr":
		return hdlc.SCodeRNR, nil
	case "srej":
		return hdlc.SCodeSREJ, nil
	default:
		return 0, fmt.Errorf("unknown s-frame code %q", code)
	}
}

func parseUFunction(code string) (hdlc.UFunction, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "snrm":
		return hdlc.UCodeSNRM, nil
	case "sabm":
		return hdlc.UCodeSABM, nil
	case "sabme":
		return hdlc.UCodeSABME, nil
	case "disc":
		return hdlc.UCodeDISC, nil
	case "ua":
		return hdlc.UCodeUA, nil
	case "rset":
		return hdlc.UCodeRSET, nil
	case "frmr":
		return hdlc.UCodeFRMR, nil
	default:
		return 0, fmt.Errorf("unknown u-frame code %q", code)
	}
}

func parseHexBytes(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ':':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return nil, nil
	}
	return hex.DecodeString(cleaned)
}
