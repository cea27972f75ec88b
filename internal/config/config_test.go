package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestResolveDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolver := Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Path != "bptree.db" {
		t.Fatalf("expected default path, got %q", cfg.Path)
	}
	if cfg.Degree != 64 {
		t.Fatalf("expected default degree 64, got %d", cfg.Degree)
	}
	if cfg.Truncate {
		t.Fatalf("expected truncate off by default")
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolver := Bind(fs)
	if err := fs.Parse([]string{"--path=custom.db", "--degree=8", "--truncate"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Path != "custom.db" {
		t.Fatalf("expected overridden path, got %q", cfg.Path)
	}
	if cfg.Degree != 8 {
		t.Fatalf("expected overridden degree, got %d", cfg.Degree)
	}
	if !cfg.Truncate {
		t.Fatalf("expected truncate on")
	}
}

func TestResolveRejectsSmallDegree(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolver := Bind(fs)
	if err := fs.Parse([]string{"--degree=2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, err := resolver.Resolve(); err == nil {
		t.Fatalf("expected error for degree < 3")
	}
}
