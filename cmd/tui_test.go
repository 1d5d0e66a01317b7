package cmd

import (
	"bytes"
	"testing"
)

func TestTUICmd_Registered(t *testing.T) {
	t.Parallel()

	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "tui" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'tui' subcommand to be registered on rootCmd")
	}
}

func TestTUICmd_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag string
	}{
		{"db", "db"},
		{"no-journal", "no-journal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := tuiCmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Errorf("expected flag %q to be registered on tui command", tt.flag)
			}
		})
	}
}

func TestTUICmd_RequiresTTY(t *testing.T) {
	t.Parallel()

	// Under 'go test' stderr is not a terminal, so the guard must trip
	// before any catalog or journal work happens.
	runErr := runTUI(tuiCmd, nil)
	if runErr == nil {
		t.Fatal("expected error when not on a TTY")
	}
	if got := runErr.Error(); got != "mainseq tui requires a TTY (terminal)" {
		t.Errorf("unexpected error: %q", got)
	}
}

func TestRootDefault_NoTTYShowsHelp(t *testing.T) {
	// Not parallel: swaps the root command's output writer.
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	err := runRootDefault(rootCmd, nil)
	if err != nil {
		t.Fatalf("expected help fallback without a TTY, got: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("mainseq")) {
		t.Errorf("expected help text naming the binary:\n%s", buf.String())
	}
}

func TestPersistentFlags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"config", "verbose", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag %q on root command", flag)
		}
	}
}
