// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/swatch/internal/cli"
	"github.com/jmylchreest/swatch/internal/colour"
)

// run executes the root command with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"SWATCH_DEBOUNCE_MS", "SWATCH_FORMAT", "SWATCH_STRICT", "SWATCH_PREVIEW", "NO_COLOR"} {
		if _, set := os.LookupEnv(key); !set {
			t.Setenv(key, "")
		}
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestConvertJSON(t *testing.T) {
	out, _, err := run(t, "", "convert", "--format", "json", "#ff0000")
	require.NoError(t, err)

	var res colour.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, colour.ConvertColor("#ff0000"), res)
	assert.Equal(t, colour.HSL{H: 0, S: 100, L: 50}, res.HSL)
	assert.Equal(t, "#00ffff", res.Palette.Complementary)
	assert.Equal(t, 4.0, res.Contrasts.White)
}

func TestConvertText(t *testing.T) {
	out, _, err := run(t, "", "convert", "FF0000")
	require.NoError(t, err)

	for _, want := range []string{
		"rgb(255, 0, 0)",
		"hsl(0, 100%, 50%)",
		"lch(53, 105, 40)",
		"white 4.00 (AA Large)",
		"black 5.25 (AA)",
		"complementary",
		"#00ffff",
		"tints   #ff3333 #ff6666 #ff9999 #ffcccc #ffffff",
		"shades  #cc0000 #990000 #660000 #330000 #000000",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\033[48;2;", "previews should be off when stdout is not a terminal")
}

func TestConvertPreviewAlways(t *testing.T) {
	out, _, err := run(t, "", "convert", "--preview", "#00ff00")
	require.NoError(t, err)
	assert.Contains(t, out, "\033[48;2;0;255;0m")
}

func TestConvertStrictRejectsMalformed(t *testing.T) {
	_, _, err := run(t, "", "convert", "not-a-color")
	require.Error(t, err)
	assert.ErrorIs(t, err, colour.ErrInvalidHex)
}

func TestConvertLenientFallsBackToBlack(t *testing.T) {
	out, errOut, err := run(t, "", "convert", "--strict=false", "-f", "json", "not-a-color")
	require.NoError(t, err)

	var res colour.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, colour.RGB{}, res.RGB)
	assert.Equal(t, colour.Contrasts{White: 21, Black: 1}, res.Contrasts)
	assert.Contains(t, errOut, "malformed colour treated as black")
}

func TestConvertRequiresOneArg(t *testing.T) {
	_, _, err := run(t, "", "convert")
	assert.Error(t, err)
}

func TestInvalidFormatFlag(t *testing.T) {
	_, _, err := run(t, "", "convert", "--format", "yaml", "#ffffff")
	assert.Error(t, err)
}

func TestPaletteTable(t *testing.T) {
	out, _, err := run(t, "", "palette", "-f", "table", "#ff0000")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+7, "header, separator and seven swatches")
	assert.Contains(t, lines[2], "complementary")
	assert.Contains(t, lines[2], "#00ffff")
	assert.Contains(t, out, "split-complementary 2")
}

func TestPalettePreview(t *testing.T) {
	out, _, err := run(t, "", "palette", "--preview", "#ff0000")
	require.NoError(t, err)

	want := colour.FormatColourWithLabel(colour.RGB{R: 0, G: 255, B: 255}, "complementary", 6)
	assert.Contains(t, out, want)
	assert.Contains(t, out, "\033[1mPalette")
}

func TestVariationsJSON(t *testing.T) {
	out, _, err := run(t, "", "variations", "-f", "json", "#ff0000")
	require.NoError(t, err)

	var got struct {
		Hex        string            `json:"hex"`
		Variations colour.Variations `json:"variations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "#ff0000", got.Hex)
	assert.Equal(t, colour.GenerateVariations("#ff0000"), got.Variations)
}

func TestContrastText(t *testing.T) {
	out, _, err := run(t, "", "contrast", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "white 1.00 (Fail)")
	assert.Contains(t, out, "black 21.00 (AAA)")
}

func TestEnvFormat(t *testing.T) {
	t.Setenv("SWATCH_FORMAT", "json")

	out, _, err := run(t, "", "contrast", "#000000")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hex":"#000000","contrasts":{"white":21,"black":1}}`, out)

	// An explicit flag wins over the environment.
	out, _, err = run(t, "", "contrast", "-f", "text", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "white 21.00 (AAA)")
}

func TestEnvFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.env")
	require.NoError(t, os.WriteFile(path, []byte("SWATCH_STRICT=false\n"), 0o600))

	out, _, err := run(t, "", "--env-file", path, "contrast", "bogus")
	require.NoError(t, err)
	assert.Contains(t, out, "white 21.00")
}

func TestInvalidEnvFails(t *testing.T) {
	t.Setenv("SWATCH_DEBOUNCE_MS", "125")

	_, _, err := run(t, "", "contrast", "#000000")
	assert.Error(t, err)
}

func TestWatchZeroDelay(t *testing.T) {
	out, _, err := run(t, "#ff0000\n#00ff00\n", "watch", "--debounce", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "[immediate #1] #ff0000"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[debounced #1] #ff0000"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[immediate #2] #00ff00"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "[debounced #2] #00ff00"), lines[3])
}

func TestWatchCoalescesBurst(t *testing.T) {
	out, _, err := run(t, "#111111\n#222222\n#333333\n", "watch", "--debounce", "1000")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "[immediate #3] #333333"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "[debounced #1] #333333"), lines[3])
}

func TestWatchTargetsAndDirectives(t *testing.T) {
	input := strings.Join([]string{
		"immediate:#ff0000",
		"delay:0",
		"debounced:#0000ff",
		"garbage",
		"delay:75",
		"sideways:#ffffff",
		"",
	}, "\n")

	out, errOut, err := run(t, input, "watch", "-f", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second struct {
		Channel string `json:"channel"`
		Updates int    `json:"updates"`
		Hex     string `json:"hex"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "immediate", first.Channel)
	assert.Equal(t, "#ff0000", first.Hex)
	assert.Equal(t, "debounced", second.Channel)
	assert.Equal(t, 1, second.Updates)
	assert.Equal(t, "#0000ff", second.Hex)

	// Malformed colour, invalid delay and unknown channel are each reported.
	assert.Equal(t, 3, strings.Count(errOut, "skipping line"), errOut)
}

func TestWatchRejectsInvalidDelay(t *testing.T) {
	_, _, err := run(t, "", "watch", "--debounce", "1200")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "swatch version")
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "", "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}
