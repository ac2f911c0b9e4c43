package web

import (
	"net/http"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/internal/httputilx"
	"github.com/shekhars271991/as-strongconsistancy/shell"
)

// terminalFrame a message exchanged with the browser terminal. the browser
// sends input and resize frames, the server answers with output and error.
type terminalFrame struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
	Cols uint16 `json:"cols,omitempty"`
	Rows uint16 `json:"rows,omitempty"`
}

// terminalSocket bridges a browser terminal to a tool running inside the
// aerolab container through a pty.
func (t *Server) terminalSocket(resp http.ResponseWriter, req *http.Request) {
	conn, err := t.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		errorsx.MaybeLog(err)
		return
	}
	defer conn.Close()

	var (
		wmu sync.Mutex
	)

	write := func(frame terminalFrame) {
		wmu.Lock()
		defer wmu.Unlock()
		errorsx.MaybeLog(conn.WriteJSON(frame))
	}

	container := shell.DetectContainer(req.Context(), t.Config.ContainerPrefix)
	if container == "" {
		write(terminalFrame{Type: "error", Data: "No AeroLab container detected. Create a cluster first."})
		return
	}

	tool := terminalTool(mux.Vars(req)["type"])
	cmd := exec.Command("docker", "exec", "-it", container, tool)

	term, err := pty.Start(cmd)
	if err != nil {
		write(terminalFrame{Type: "error", Data: "failed to start " + tool + ": " + err.Error()})
		return
	}
	defer term.Close()
	defer func() {
		errorsx.MaybeLog(cmd.Process.Kill())
		errorsx.MaybeLog(cmd.Wait())
	}()

	// pty -> browser.
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, rerr := term.Read(buf)
			if n > 0 {
				write(terminalFrame{Type: "output", Data: string(buf[:n])})
			}
			if rerr != nil {
				return
			}
		}
	}()

	// browser -> pty.
	for {
		var frame terminalFrame
		if err = conn.ReadJSON(&frame); err != nil {
			if !httputilx.IsWebsocketShutdownError(err) && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errorsx.MaybeLog(err)
			}
			return
		}

		switch frame.Type {
		case "input":
			if _, err = term.WriteString(frame.Data); err != nil {
				<-done
				return
			}
		case "resize":
			if frame.Cols > 0 && frame.Rows > 0 {
				errorsx.MaybeLog(pty.Setsize(term, &pty.Winsize{Rows: frame.Rows, Cols: frame.Cols}))
			}
		}
	}
}

func terminalTool(kind string) string {
	switch kind {
	case "aql":
		return "aql"
	case "asadm":
		return "asadm"
	default:
		return "bash"
	}
}
