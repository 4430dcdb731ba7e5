package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rawbytedev/binbuf/pkg/compactwire"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRunConvert(t *testing.T) {
	out, err := runCLI(t, "hello")
	require.NoError(t, err)
	require.Equal(t, "68656c6c6f\n", out)

	out, err = runCLI(t, "68656c6c6f\n", "--from", "hex", "--to", "base64")
	require.NoError(t, err)
	require.Equal(t, "aGVsbG8=\n", out)

	out, err = runCLI(t, "aGk=", "--from", "base64", "--to", "utf8")
	require.NoError(t, err)
	require.Equal(t, "hi\n", out)

	_, err = runCLI(t, "x", "--to", "rot13")
	require.Error(t, err)
}

func TestRunJSONAndInspect(t *testing.T) {
	out, err := runCLI(t, "Hi", "--json")
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Buffer","data":[72,105]}`, out)

	out, err = runCLI(t, "Hello", "--inspect")
	require.NoError(t, err)
	require.Equal(t, "<Buffer 48 65 6c 6c 6f>\n", out)
}

func TestRunRead(t *testing.T) {
	cases := []struct {
		hex, read, want string
	}{
		{"ffffffffffffffff", "int64be@0", "-1"},
		{"ffffffffffffffff", "uint64be", "18446744073709551615"},
		{"405edd2f1a9fbe77", "float64be@0", "123.456"},
		{"00010203", "uint16le@1", "513"},
		{"00ff", "int8@1", "-1"},
		{"1234567890ab", "uintbe:6@0", "20015998341291"},
		{"1234567890ab", "INTLE:2@4", "-21616"},
	}
	for _, c := range cases {
		out, err := runCLI(t, c.hex, "--from", "hex", "--read", c.read)
		require.NoError(t, err, c.read)
		require.Equal(t, c.want+"\n", out, c.read)
	}

	for _, bad := range []string{"uint32be@2", "int128@0", "uint8@x", "intbe:y@0", "intbe:7@0"} {
		_, err := runCLI(t, "0000", "--from", "hex", "--read", bad)
		require.Error(t, err, bad)
	}
}

func TestRunFrameRoundTrip(t *testing.T) {
	text := strings.Repeat("frame me ", 20)
	for _, codec := range []string{"raw", "zstd", "s2", "lz4"} {
		framed, err := runCLI(t, text, "--frame", codec)
		require.NoError(t, err, codec)

		var d compactwire.DataFrame
		b, err := d.DecodeDataFrame([]byte(framed))
		require.NoError(t, err, codec)
		require.Equal(t, text, b.String())

		out, err := runCLI(t, framed, "--unframe", "--to", "utf8")
		require.NoError(t, err, codec)
		require.Equal(t, text+"\n", out)
	}

	_, err := runCLI(t, "x", "--frame", "brotli")
	require.ErrorIs(t, err, compactwire.ErrUnknownCodec)
	_, err = runCLI(t, "not a frame at all", "--unframe")
	require.ErrorIs(t, err, compactwire.ErrNotFrame)
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xde, 0xad}, 0o600))
	out, err := runCLI(t, "", "-i", path)
	require.NoError(t, err)
	require.Equal(t, "dead\n", out)

	_, err = runCLI(t, "", "--input", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestRunFlagErrors(t *testing.T) {
	_, err := runCLI(t, "", "--no-such-flag")
	require.Error(t, err)
	_, err = runCLI(t, "", "--log-level", "chatty")
	require.Error(t, err)
}
