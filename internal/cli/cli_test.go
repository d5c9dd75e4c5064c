package cli

import (
	"io"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "narravis" {
		t.Errorf("root command Use = %q, want narravis", root.Use)
	}

	want := map[string]bool{
		"layout":     false,
		"preview":    false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.cacheCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"clear", "stats", "path"} {
		if !names[want] {
			t.Errorf("cache command missing subcommand %q", want)
		}
	}
}
