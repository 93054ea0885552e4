package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the command tree with args and returns what it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

// resetFlags restores flag defaults; cobra binds them to package variables
// that outlive a single run.
func resetFlags() {
	configPath, fillName, verbose, watchFile = "", "wireframe", false, false
	renderFrames, renderStart, renderStep, renderOut = 1, 0, 16, "frame.png"
	infoLongest, infoShortest = 0, 0
}

// executeContext is execute with ctx handed to every command.
// cobra keeps a subcommand's context once set, so each run replaces it.
func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	for _, c := range rootCmd.Commands() {
		c.SetContext(ctx)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestInfoDescribesCube(t *testing.T) {
	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	for _, want := range []string{"Name: cube", "Triangles: 12", "Vertices: 8", "Edges: 36"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestInfoMissingFile(t *testing.T) {
	if _, err := execute(t, "info", filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRenderWritesFrame(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(config, []byte("screenWidth: 64\nscreenHeight: 48\noffset:\n  z: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	out := filepath.Join(dir, "cube.png")

	if _, err := execute(t, "render", "--config", config, "--fill", "both", "--out", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output image: %v", err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("Expected 64x48 image, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderStopsWhenContextDone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executeContext(t, ctx, "render", "--frames", "5", "--out", dir)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no frames to be written, got %d", len(entries))
	}
}

func TestRenderWritesFrameSequence(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(config, []byte("screenWidth: 32\nscreenHeight: 24\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	out := filepath.Join(dir, "frames")

	if _, err := execute(t, "render", "--config", config, "--frames", "3", "--out", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		name := filepath.Join(out, fmt.Sprintf("frame_%04d.png", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}
}

func TestInfoListsEdgesAndDimensions(t *testing.T) {
	out, err := execute(t, "info", "--edges", "2", "--shortest", "1")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	for _, want := range []string{"Width (X): 1.000000", "Longest Edges:", "  2. 1.414214", "Shortest Edges:", "  1. 1.000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "  3. 1.414214") {
		t.Error("Expected only 2 longest edges")
	}
}

func TestFillFlagCompletion(t *testing.T) {
	out, err := execute(t, "__complete", "--fill", "")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	for _, want := range []string{"wireframe", "filled", "both"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q among completions, got:\n%s", want, out)
		}
	}
}

func TestFramePaths(t *testing.T) {
	single, err := framePaths("shot.bmp", 1)
	if err != nil || len(single) != 1 || single[0] != "shot.bmp" {
		t.Errorf("Single frame failed: got %v, %v", single, err)
	}

	dir := filepath.Join(t.TempDir(), "frames")
	paths, err := framePaths(dir, 3)
	if err != nil {
		t.Fatalf("framePaths failed: %v", err)
	}
	if len(paths) != 3 || paths[2] != filepath.Join(dir, "frame_0002.png") {
		t.Errorf("Unexpected paths: %v", paths)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Expected output directory to be created: %v", err)
	}

	if _, err := framePaths(dir, 0); err == nil {
		t.Error("Expected error for zero frames")
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("Expected error for unknown shell")
	}
}

func TestCompletionBash(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !strings.Contains(out, "goobj") {
		t.Error("Expected completion script to mention goobj")
	}
}
