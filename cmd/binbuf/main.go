// Command binbuf inspects and converts binary data: it decodes input with
// any supported encoding, re-encodes it, reads numbers at offsets, and
// wraps or unwraps compactwire frames.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rawbytedev/binbuf"
	"github.com/rawbytedev/binbuf/pkg/compactwire"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type config struct {
	input    string
	from     string
	to       string
	asJSON   bool
	inspect  bool
	read     string
	frame    string
	unframe  bool
	logLevel string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logrus.WithError(err).Error("binbuf failed")
		os.Exit(1)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := pflag.NewFlagSet("binbuf", pflag.ContinueOnError)
	fs.StringVarP(&cfg.input, "input", "i", "-", "input file, - for stdin")
	fs.StringVar(&cfg.from, "from", "raw", "input encoding: raw or a text encoding (utf8, hex, base64, ...)")
	fs.StringVar(&cfg.to, "to", binbuf.Hex, "output text encoding")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the {type,data} JSON form")
	fs.BoolVar(&cfg.inspect, "inspect", false, "print a <Buffer ..> summary")
	fs.StringVar(&cfg.read, "read", "", "read a number, e.g. uint32le@4, int16be@0, intbe:3@2")
	fs.StringVar(&cfg.frame, "frame", "", "wrap input in a compactwire frame compressed with raw, zstd, s2 or lz4")
	fs.BoolVar(&cfg.unframe, "unframe", false, "treat input as a compactwire data frame")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "logrus level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	buf, err := load(cfg, stdin)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"bytes": buf.Len(), "from": cfg.from}).Debug("input loaded")

	switch {
	case cfg.frame != "":
		codec, err := compactwire.ParseCodec(cfg.frame)
		if err != nil {
			return err
		}
		d := &compactwire.DataFrame{Opts: compactwire.Options{Codec: codec}}
		framed, err := d.EncodeDataFrame(buf)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"codec": codec, "frame": framed.Len()}).Info("framed")
		_, err = stdout.Write(framed.Bytes())
		return err
	case cfg.read != "":
		v, err := readNumber(buf, cfg.read)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, v)
		return err
	case cfg.asJSON:
		return json.NewEncoder(stdout).Encode(buf)
	case cfg.inspect:
		_, err = fmt.Fprintln(stdout, buf.Inspect())
		return err
	}
	s, err := buf.ToString(cfg.to, 0, buf.Len())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, s)
	return err
}

func load(cfg *config, stdin io.Reader) (*binbuf.Buffer, error) {
	r := stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.unframe {
		var d compactwire.DataFrame
		return d.DecodeDataFrame(data)
	}
	if cfg.from == "raw" {
		return binbuf.FromBytes(data)
	}
	return binbuf.FromString(strings.TrimSpace(string(data)), cfg.from)
}

type reader func(b *binbuf.Buffer, offset, width int) (any, error)

func fixed[T any](read func(*binbuf.Buffer, int) (T, error)) reader {
	return func(b *binbuf.Buffer, offset, _ int) (any, error) {
		return read(b, offset)
	}
}

func variable[T any](read func(*binbuf.Buffer, int, int) (T, error)) reader {
	return func(b *binbuf.Buffer, offset, width int) (any, error) {
		return read(b, offset, width)
	}
}

var readers = map[string]reader{
	"int8":      fixed((*binbuf.Buffer).ReadInt8),
	"uint8":     fixed((*binbuf.Buffer).ReadUint8),
	"int16be":   fixed((*binbuf.Buffer).ReadInt16BE),
	"int16le":   fixed((*binbuf.Buffer).ReadInt16LE),
	"uint16be":  fixed((*binbuf.Buffer).ReadUint16BE),
	"uint16le":  fixed((*binbuf.Buffer).ReadUint16LE),
	"int32be":   fixed((*binbuf.Buffer).ReadInt32BE),
	"int32le":   fixed((*binbuf.Buffer).ReadInt32LE),
	"uint32be":  fixed((*binbuf.Buffer).ReadUint32BE),
	"uint32le":  fixed((*binbuf.Buffer).ReadUint32LE),
	"int64be":   fixed((*binbuf.Buffer).ReadBigInt64BE),
	"int64le":   fixed((*binbuf.Buffer).ReadBigInt64LE),
	"uint64be":  fixed((*binbuf.Buffer).ReadBigUint64BE),
	"uint64le":  fixed((*binbuf.Buffer).ReadBigUint64LE),
	"float32be": fixed((*binbuf.Buffer).ReadFloat32BE),
	"float32le": fixed((*binbuf.Buffer).ReadFloat32LE),
	"float64be": fixed((*binbuf.Buffer).ReadFloat64BE),
	"float64le": fixed((*binbuf.Buffer).ReadFloat64LE),
	"intbe":     variable((*binbuf.Buffer).ReadIntBE),
	"intle":     variable((*binbuf.Buffer).ReadIntLE),
	"uintbe":    variable((*binbuf.Buffer).ReadUintBE),
	"uintle":    variable((*binbuf.Buffer).ReadUintLE),
}

// readNumber parses "kind[:width]@offset" and reads that number from b.
func readNumber(b *binbuf.Buffer, expr string) (any, error) {
	kind, offStr, ok := strings.Cut(expr, "@")
	if !ok {
		offStr = "0"
	}
	offset, err := strconv.Atoi(offStr)
	if err != nil {
		return nil, fmt.Errorf("bad offset in %q: %w", expr, err)
	}
	width := 0
	if name, w, ok := strings.Cut(kind, ":"); ok {
		if width, err = strconv.Atoi(w); err != nil {
			return nil, fmt.Errorf("bad width in %q: %w", expr, err)
		}
		kind = name
	}
	read, ok := readers[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown number kind %q", kind)
	}
	return read(b, offset, width)
}
