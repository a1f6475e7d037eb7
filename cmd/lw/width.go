package main

import (
	"fmt"

	"github.com/jallum/lexwrap/internal/wrap"
)

func cmdWidth(args []string, w Writer) error {
	a, err := parseFor("width", args)
	if err != nil {
		return err
	}
	cfg := settings
	if err := a.intFlag("--width", &cfg.Width); err != nil {
		return err
	}
	if err := a.intFlag("--fallback-width", &cfg.FallbackWidth); err != nil {
		return err
	}
	if cfg.FallbackWidth == 0 {
		return fmt.Errorf("invalid --fallback-width: must be positive")
	}
	fmt.Fprintln(w, wrap.ResolveWidth(widthQuery(cfg.Width), cfg.FallbackWidth))
	return nil
}
