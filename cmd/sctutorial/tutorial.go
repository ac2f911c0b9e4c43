package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/internal/envx"
	"github.com/shekhars271991/as-strongconsistancy/internal/stringsx"
	"github.com/shekhars271991/as-strongconsistancy/tutorial"
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

type cmdTutorial struct {
	Config         string        `help:"path to an optional yaml configuration file" predictor:"file" default:"sctutorial.yml"`
	Host           string        `help:"aerospike seed host" default:"${vars.sctutorial.default.host}"`
	Port           int           `help:"aerospike service port" default:"3100"`
	Namespace      string        `help:"namespace the lessons operate on" default:"${vars.sctutorial.default.namespace}"`
	Set            string        `help:"set the lessons write into" default:"tutorial"`
	Timeout        time.Duration `help:"client connection timeout" default:"5s"`
	Lessons        []int         `help:"lesson numbers to run, runs the full curriculum when omitted" name:"lessons" sep:","`
	SkipSCCheck    bool          `help:"skip the strong consistency verification" name:"skip-sc-check"`
	NonInteractive bool          `help:"disable pauses and shell menus"`
}

func (t cmdTutorial) Run(global *Global) error {
	config, err := t.configuration()
	if err != nil {
		return err
	}

	interactive := !t.NonInteractive && isatty.IsTerminal(os.Stdin.Fd())

	// the setup lesson exists to fix a cluster without strong consistency;
	// requesting it alone implies the pre-check would only get in the way.
	skipSCCheck := t.SkipSCCheck || (len(t.Lessons) == 1 && t.Lessons[0] == 0)

	err = tutorial.New(config, interactive).Run(global.Context, t.Lessons, skipSCCheck)
	if errors.Cause(err) == ux.ErrQuit {
		ux.Info("Goodbye!")
		return nil
	}

	return err
}

// configuration merges defaults, the optional file, flags, and environment.
func (t cmdTutorial) configuration() (sctutorial.Config, error) {
	config := sctutorial.NewConfig()

	if err := sctutorial.ExpandAndDecodeFile(t.Config, &config); err != nil {
		return config, err
	}

	// precedence: flag > environment > file > default.
	config.Host = envx.String(config.Host, sctutorial.EnvHost)
	config.Namespace = envx.String(config.Namespace, sctutorial.EnvNamespace)

	if t.Host != sctutorial.DefaultHost || config.Host == "" {
		config.Host = t.Host
	}
	if t.Port != sctutorial.DefaultPort || config.Port == 0 {
		config.Port = t.Port
	}
	if t.Namespace != sctutorial.DefaultNamespace || config.Namespace == "" {
		config.Namespace = t.Namespace
	}
	if t.Set != sctutorial.DefaultSet || config.Set == "" {
		config.Set = t.Set
	}
	if t.Timeout != sctutorial.DefaultConnectTimeout || config.Timeout == 0 {
		config.Timeout = t.Timeout
	}

	config.ContainerPrefix = stringsx.DefaultIfBlank(config.ContainerPrefix, sctutorial.DefaultContainerPrefix)

	return config, nil
}
