package httputilx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/shekhars271991/as-strongconsistancy/backoff"
)

// RouteInvokedHandler wraps a http.Handler and emits route invocations.
func RouteInvokedHandler(original http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		p := req.Host + req.URL.Path
		if route := mux.CurrentRoute(req); route != nil && len(route.GetName()) > 0 {
			p = route.GetName()
		}
		started := time.Now()
		log.Println(p, "invoked")
		original.ServeHTTP(resp, req)
		log.Println(p, "completed", time.Since(started))
	})
}

// RouteRateLimited applies a rate limit to the http handler.
func RouteRateLimited(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(original http.Handler) http.Handler {
		attempts := int64(0)
		b := backoff.New(
			backoff.Exponential(32*time.Millisecond),
			backoff.Maximum(2*time.Second),
		)

		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			if l.Allow() {
				atomic.StoreInt64(&attempts, 0)
				original.ServeHTTP(resp, req)
				return
			}

			nattempt := int(atomic.AddInt64(&attempts, 1))
			resp.Header().Add("Retry-After", fmt.Sprintf("%d", int(b.Backoff(nattempt)/time.Second)))
			resp.WriteHeader(http.StatusTooManyRequests)
		})
	}
}

// WriteJSON writes a json payload into the provided buffer and sets the content-type header to application/json.
func WriteJSON(resp http.ResponseWriter, buffer *bytes.Buffer, context interface{}) error {
	var (
		err error
	)

	buffer.Reset()
	resp.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(buffer).Encode(context); err != nil {
		resp.WriteHeader(http.StatusInternalServerError)
		return err
	}

	_, err = io.Copy(resp, buffer)
	return err
}

// IsWebsocketShutdownError detects shutdown errors for websocket connections.
func IsWebsocketShutdownError(err error) bool {
	type temporary interface {
		error
		Temporary() bool
	}

	// check sentinel values.
	switch err {
	case websocket.ErrCloseSent:
		return true
	}

	switch r := err.(type) {
	case *websocket.CloseError:
		return true
	case temporary:
		return !r.Temporary()
	default:
		switch r.Error() {
		case "tls: use of closed connection":
			return true
		}
	}

	return false
}
