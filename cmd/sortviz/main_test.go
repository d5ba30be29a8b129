package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().StringVar(&valuesArg, "values", "", "")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "")
	cmd.Flags().IntVar(&minValue, "min", config.DefaultMinValue, "")
	cmd.Flags().IntVar(&maxValue, "max", config.DefaultMaxValue, "")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "")
	cmd.Flags().StringVar(&preset, "preset", "", "")
	return cmd
}

func resetRunFlags() {
	configFile = ""
	valuesArg = ""
	count = config.DefaultCount
	minValue = config.DefaultMinValue
	maxValue = config.DefaultMaxValue
	seed = 0
	preset = ""
	configValues = nil
}

func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestMergeRunConfigAppliesFile(t *testing.T) {
	resetRunFlags()

	cfg := config.DefaultConfig()
	cfg.Count = 12
	cfg.MinValue = 5
	cfg.MaxValue = 50
	cfg.Seed = 99
	configFile = writeConfig(t, cfg)

	if err := mergeRunConfig(newRunCommand()); err != nil {
		t.Fatalf("mergeRunConfig: %v", err)
	}
	if count != 12 || minValue != 5 || maxValue != 50 || seed != 99 {
		t.Errorf("config not applied: count=%d min=%d max=%d seed=%d", count, minValue, maxValue, seed)
	}
}

func TestMergeRunConfigFlagsOverride(t *testing.T) {
	resetRunFlags()

	cfg := config.DefaultConfig()
	cfg.Count = 12
	cfg.Seed = 99
	configFile = writeConfig(t, cfg)

	cmd := newRunCommand()
	if err := cmd.Flags().Set("count", "4"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cmd.Flags().Set("seed", "7"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := mergeRunConfig(cmd); err != nil {
		t.Fatalf("mergeRunConfig: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want flag value 4", count)
	}
	if seed != 7 {
		t.Errorf("seed = %d, want flag value 7", seed)
	}
}

func TestMergeRunConfigFixedValues(t *testing.T) {
	resetRunFlags()

	cfg := config.DefaultConfig()
	cfg.Values = []float64{5, 3, 8, 1}
	configFile = writeConfig(t, cfg)

	if err := mergeRunConfig(newRunCommand()); err != nil {
		t.Fatalf("mergeRunConfig: %v", err)
	}

	values, source, err := resolveInput()
	if err != nil {
		t.Fatalf("resolveInput: %v", err)
	}
	if source != "config" {
		t.Errorf("source = %q, want %q", source, "config")
	}
	if !reflect.DeepEqual(values, []float64{5, 3, 8, 1}) {
		t.Errorf("values = %v, want config values", values)
	}
}

func TestMergeRunConfigValuesFlagWins(t *testing.T) {
	resetRunFlags()

	cfg := config.DefaultConfig()
	cfg.Values = []float64{5, 3, 8, 1}
	configFile = writeConfig(t, cfg)

	cmd := newRunCommand()
	if err := cmd.Flags().Set("values", "2,1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	valuesArg = "2,1"

	if err := mergeRunConfig(cmd); err != nil {
		t.Fatalf("mergeRunConfig: %v", err)
	}

	values, source, err := resolveInput()
	if err != nil {
		t.Fatalf("resolveInput: %v", err)
	}
	if source != "manual" {
		t.Errorf("source = %q, want %q", source, "manual")
	}
	if !reflect.DeepEqual(values, []float64{2, 1}) {
		t.Errorf("values = %v, want flag values", values)
	}
}

func TestMergeRunConfigNoFile(t *testing.T) {
	resetRunFlags()

	if err := mergeRunConfig(newRunCommand()); err != nil {
		t.Fatalf("mergeRunConfig: %v", err)
	}
	if count != config.DefaultCount {
		t.Errorf("count = %d, want default %d", count, config.DefaultCount)
	}
}

func TestMergeRunConfigRejectsInvalid(t *testing.T) {
	resetRunFlags()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("count: 1\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	configFile = path

	if err := mergeRunConfig(newRunCommand()); err == nil {
		t.Error("expected error for out-of-range count")
	}
}
