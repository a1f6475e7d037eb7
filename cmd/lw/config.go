package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jallum/lexwrap/internal/config"
	"github.com/jallum/lexwrap/internal/logging"
)

func cmdConfig(args []string, w Writer) error {
	a, err := parseFor("config", args)
	if err != nil {
		return err
	}

	switch a.PosFirst() {
	case "", "show":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))

	case "init":
		path := configPath
		if _, err := workFS.Stat(path); err == nil && !a.Bool("--force") {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.Save(workFS, path, config.Default()); err != nil {
			return err
		}
		logging.Info("config written", "path", path)
		fmt.Fprintf(w, "wrote %s\n", path)

	default:
		return fmt.Errorf("usage: lw config [show|init]")
	}
	return nil
}
