// Package main is the strong consistency tutorial frontend; it drives the
// terminal curriculum and the browser edition.
package main

import (
	"context"
	"log"
	"os"
	"sync"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/cmd/commandutils"
	"github.com/shekhars271991/as-strongconsistancy/internal/debugx"
	"github.com/shekhars271991/as-strongconsistancy/internal/systemx"

	_ "github.com/joho/godotenv/autoload"
)

type Global struct {
	Verbosity int                `help:"increase verbosity of logging" short:"v" type:"counter"`
	Context   context.Context    `kong:"-"`
	Shutdown  context.CancelFunc `kong:"-"`
	Cleanup   *sync.WaitGroup    `kong:"-"`
}

func (t Global) BeforeApply() error {
	commandutils.LogEnv(t.Verbosity)
	return nil
}

func main() {
	var shellCli struct {
		Global
		Tutorial           cmdTutorial                  `cmd:"" default:"withargs" help:"run the interactive terminal tutorial"`
		Web                cmdWeb                       `cmd:"" help:"serve the browser edition of the tutorial"`
		Version            cmdVersion                   `cmd:"" help:"print version information"`
		InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
	}

	var (
		err error
		ctx *kong.Context
	)

	shellCli.Context, shellCli.Shutdown = context.WithCancel(context.Background())
	shellCli.Cleanup = &sync.WaitGroup{}

	log.SetFlags(log.Flags() | log.Lshortfile)
	go debugx.DumpOnSignal(shellCli.Context, syscall.SIGUSR2)
	go systemx.Cleanup(shellCli.Context, shellCli.Shutdown, shellCli.Cleanup, os.Kill, os.Interrupt)(func() {
		log.Println("waiting for systems to shutdown")
	})

	parser := kong.Must(
		&shellCli,
		kong.Name("sctutorial"),
		kong.Description("interactive tutorial for aerospike strong consistency"),
		kong.UsageOnError(),
		kong.Bind(&shellCli.Global),
		kong.Vars{
			"vars.sctutorial.default.host":      sctutorial.DefaultHost,
			"vars.sctutorial.default.namespace": sctutorial.DefaultNamespace,
			"vars.sctutorial.default.web.bind":  sctutorial.DefaultWebBind,
		},
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Fatalln(err)
	}

	ctx.FatalIfErrorf(commandutils.LogCause(ctx.Run()))
}
