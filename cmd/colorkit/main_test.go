package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/colorkit"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { colorkit.SetLogger(nil) })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writePalette(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	doc := "colors:\n  - name: Signal\n    hex: \"#E00000\"\n  - name: Night\n    hex: \"#000010\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2026-10-19")
}

func TestHSVCommand(t *testing.T) {
	out, _, err := executeCommand(t, "hsv", "#FF0000")
	require.NoError(t, err)
	require.Contains(t, out, "h=0.00 s=1.0000 v=1.0000 alpha=1.0000")
	require.Contains(t, out, `name="Red"`)

	_, _, err = executeCommand(t, "hsv", "#XYZ")
	require.ErrorIs(t, err, colorkit.ErrInvalidHex)
}

func TestRGBCommand(t *testing.T) {
	out, _, err := executeCommand(t, "rgb")
	require.NoError(t, err)
	require.Equal(t, "#ffff0000\n", out)

	out, _, err = executeCommand(t, "rgb", "--hue", "120", "--alpha", "0")
	require.NoError(t, err)
	require.Equal(t, "#0000ff00\n", out)
}

func TestStepCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hue small", []string{"#FF0000"}, "#ffff0400"},
		{"hue wraps", []string{"#FF0000", "--dir", "lower", "--wrap"}, "#ffff0004"},
		{"hue clamps", []string{"#FF0000", "--dir", "lower"}, "#ffff0000"},
		{"value down", []string{"#FF0000", "--channel", "value", "--dir", "lower"}, "#fffc0000"},
		{"alpha large", []string{"#5EFF0000", "--channel", "alpha", "--dir", "lower", "--amount", "large"}, "#4cff0000"},
		{"hex names large", []string{"#FF0000", "--amount", "large", "--hex-names"}, "#ffff0400"},
		{"keeps alpha", []string{"#80FF0000", "--channel", "value", "--dir", "lower"}, "#80fc0000"},
		{"custom max", []string{"#FF0000", "--channel", "value", "--max", "50"}, "#ff7f0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, append([]string{"step"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestStepCommandErrors(t *testing.T) {
	_, _, err := executeCommand(t, "step", "#FF0000", "--channel", "chroma")
	require.ErrorIs(t, err, colorkit.ErrUnsupportedChannel)

	_, _, err = executeCommand(t, "step", "#FF0000", "--dir", "up")
	require.ErrorContains(t, err, "invalid direction")

	_, _, err = executeCommand(t, "step", "#FF0000", "--amount", "huge")
	require.ErrorContains(t, err, "invalid amount")

	_, _, err = executeCommand(t, "step", "#FF0000", "--palette", "x.yaml", "--hex-names")
	require.Error(t, err)
}

func TestNameCommand(t *testing.T) {
	out, _, err := executeCommand(t, "name", "#FF8C00")
	require.NoError(t, err)
	require.Equal(t, "Dark Orange\n", out)

	out, _, err = executeCommand(t, "name", "#FF8C00", "--hex-names")
	require.NoError(t, err)
	require.Equal(t, "#ffff8c00\n", out)

	out, _, err = executeCommand(t, "name", "#F01010", "--palette", writePalette(t))
	require.NoError(t, err)
	require.Equal(t, "Signal\n", out)

	out, _, err = executeCommand(t, "name", "#FF8C00", "--metric", "lab")
	require.NoError(t, err)
	require.Equal(t, "Dark Orange\n", out)

	_, _, err = executeCommand(t, "name", "#FF8C00", "--metric", "hsv")
	require.ErrorContains(t, err, "unknown metric")
	require.ErrorIs(t, err, colorkit.ErrInvalidArgument)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := executeCommand(t, "--verbose", "name", "#000000", "--palette", writePalette(t))
	require.NoError(t, err)
	require.Equal(t, "Night\n", out)
	require.Contains(t, stderr, "palette loaded")
}

func TestCheckerCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")

	out, _, err := executeCommand(t, "checker", "--width", "8", "--height", "8", "--color", "#FF0000FF", "-o", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote")
	require.Contains(t, out, "(8x8)")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	_, _, _, a := img.At(0, 0).RGBA()
	require.Zero(t, a)
	r, g, b, a := img.At(4, 0).RGBA()
	require.Equal(t, []uint32{0, 0, 0xffff, 0xffff}, []uint32{r, g, b, a})

	_, _, err = executeCommand(t, "checker", "--width", "0", "-o", path)
	require.ErrorContains(t, err, "empty")

	_, _, err = executeCommand(t, "checker", "-o", filepath.Join(t.TempDir(), "checker.gif"))
	require.ErrorContains(t, err, "unsupported image format")
}

func TestSpectrumCommand(t *testing.T) {
	dir := t.TempDir()

	for _, layer := range []string{"flat", "min", "max"} {
		path := filepath.Join(dir, layer+".bmp")
		out, _, err := executeCommand(t, "spectrum", "--size", "16", "--components", "saturation-value", "--layer", layer, "-o", path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "wrote "+path))
		_, err = os.Stat(path)
		require.NoError(t, err)
	}

	_, _, err := executeCommand(t, "spectrum", "--layer", "middle", "-o", filepath.Join(dir, "x.png"))
	require.ErrorContains(t, err, "invalid layer")

	_, _, err = executeCommand(t, "spectrum", "--components", "hue-alpha")
	require.ErrorIs(t, err, colorkit.ErrInvalidArgument)

	ring := filepath.Join(dir, "ring.png")
	_, _, err = executeCommand(t, "spectrum", "--size", "16", "--shape", "ring", "--layer", "max", "-o", ring)
	require.NoError(t, err)
	f, err := os.Open(ring)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	_, _, _, a := img.At(0, 0).RGBA()
	require.Zero(t, a)
	_, _, _, a = img.At(8, 8).RGBA()
	require.EqualValues(t, 0xffff, a)

	_, _, err = executeCommand(t, "spectrum", "--shape", "ellipse")
	require.ErrorIs(t, err, colorkit.ErrInvalidArgument)

	_, _, err = executeCommand(t, "spectrum", "--size", "100000")
	require.ErrorIs(t, err, colorkit.ErrInvalidDimensions)
}
