package main

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type cmdVersion struct{}

func (t cmdVersion) Run(global *Global) (err error) {
	var (
		ok    bool
		info  *debug.BuildInfo
		ts    time.Time
		id    string
		dirty bool
	)

	if info, ok = debug.ReadBuildInfo(); !ok {
		return errors.New("unable to detect build information")
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.modified":
			dirty = v.Value == "true"
		case "vcs.revision":
			id = v.Value
		case "vcs.time":
			if ts, err = time.Parse(time.RFC3339, v.Value); err != nil {
				return err
			}
		}
	}

	if _, err = fmt.Println(info.Main.Path, ts.Format("2006-01-02"), id); err != nil {
		return err
	}

	if dirty {
		if _, err = fmt.Println("modified build"); err != nil {
			return err
		}
	}

	return nil
}
