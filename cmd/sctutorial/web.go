package main

import (
	"log"

	"github.com/shekhars271991/as-strongconsistancy/web"
)

type cmdWeb struct {
	cmdTutorial
	Bind string `help:"address to serve the web tutorial on" default:"${vars.sctutorial.default.web.bind}"`
}

func (t cmdWeb) Run(global *Global) error {
	config, err := t.configuration()
	if err != nil {
		return err
	}

	log.Println("serving tutorial on", t.Bind)
	return web.NewServer(config).ListenAndServe(global.Context, t.Bind)
}
