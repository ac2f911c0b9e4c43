// Package web serves the browser edition of the tutorial: the full lesson
// catalog as a JSON API, cluster status probes, guided aerolab setup over
// websockets, and interactive terminals bridged through a pty.
package web

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/cluster"
	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/internal/httputilx"
	"github.com/shekhars271991/as-strongconsistancy/shell"
)

//go:embed static
var static embed.FS

// Server the tutorial web application.
type Server struct {
	Config   sctutorial.Config
	upgrader websocket.Upgrader
}

// NewServer builds a server over the configuration.
func NewServer(config sctutorial.Config) *Server {
	return &Server{
		Config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the app is served from the same origin it talks to.
			CheckOrigin: func(req *http.Request) bool { return true },
		},
	}
}

// Bind registers the application routes on the router.
func (t *Server) Bind(router *mux.Router) {
	router.StrictSlash(false)

	api := router.PathPrefix("/api").Subrouter()
	api.Handle("/lessons", httputilx.RouteInvokedHandler(http.HandlerFunc(t.lessons))).Methods(http.MethodGet).Name("lessons")
	api.Handle("/lessons/{id}", httputilx.RouteInvokedHandler(http.HandlerFunc(t.lesson))).Methods(http.MethodGet).Name("lesson")
	api.Handle("/cluster/status", httputilx.RouteInvokedHandler(http.HandlerFunc(t.clusterStatus))).Methods(http.MethodGet).Name("cluster.status")
	api.Handle("/setup/check-prerequisites", httputilx.RouteInvokedHandler(http.HandlerFunc(t.checkPrerequisites))).Methods(http.MethodGet).Name("setup.prerequisites")
	api.Handle("/setup/create-cluster", httputilx.RouteInvokedHandler(http.HandlerFunc(t.createClusterFallback))).Methods(http.MethodPost).Name("setup.create")
	api.Handle("/setup/destroy-cluster", httputilx.RouteInvokedHandler(http.HandlerFunc(t.destroyCluster))).Methods(http.MethodPost).Name("setup.destroy")
	api.Handle("/setup/upload-feature-key", httputilx.RouteInvokedHandler(http.HandlerFunc(t.uploadFeatureKey))).Methods(http.MethodPost).Name("setup.featurekey")

	router.HandleFunc("/ws/setup/create-cluster", t.createClusterSocket).Name("ws.setup.create")
	router.HandleFunc("/ws/terminal/{type}", t.terminalSocket).Name("ws.terminal")

	assets, err := fs.Sub(static, "static")
	errorsx.MaybeLog(errors.Wrap(err, "failed to mount static assets"))
	router.PathPrefix("/").Handler(httputilx.RouteRateLimited(rate.NewLimiter(rate.Limit(100), 200))(http.FileServer(http.FS(assets)))).Name("static")
}

// ListenAndServe runs the web application until the context is cancelled.
func (t *Server) ListenAndServe(ctx context.Context, bind string) error {
	router := mux.NewRouter()
	t.Bind(router)

	s := &http.Server{
		Addr:         bind,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websockets stay open indefinitely.
	}

	go func() {
		<-ctx.Done()
		sctx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		errorsx.MaybeLog(errors.Wrap(s.Shutdown(sctx), "failed to shutdown web server"))
	}()

	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrapf(err, "failed to serve on %s", bind)
	}

	return nil
}

func (t *Server) lessons(resp http.ResponseWriter, req *http.Request) {
	var (
		buf bytes.Buffer
	)

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"lessons": Lessons(),
	}))
}

func (t *Server) lesson(resp http.ResponseWriter, req *http.Request) {
	var (
		buf bytes.Buffer
	)

	id, err := strconv.Atoi(mux.Vars(req)["id"])
	if catalog := Lessons(); err != nil || id < 0 || id >= len(catalog) {
		// the content type must precede the status line.
		resp.Header().Set("Content-Type", "application/json")
		resp.WriteHeader(http.StatusNotFound)
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"error": "Lesson not found",
		}))
		return
	}

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"lesson": Lessons()[id],
	}))
}

func (t *Server) clusterStatus(resp http.ResponseWriter, req *http.Request) {
	var (
		buf bytes.Buffer
		ctx = req.Context()
	)

	container := shell.DetectContainer(ctx, t.Config.ContainerPrefix)
	if container == "" {
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"status":  "error",
			"message": "No AeroLab container detected",
		}))
		return
	}

	raw, err := shell.Asinfo(ctx, container, "namespace/"+t.Config.Namespace)
	if err != nil {
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"status":  "error",
			"message": err.Error(),
		}))
		return
	}

	params := cluster.ParseInfo(raw)
	health := cluster.HealthFromInfo(params)

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"status":                 "connected",
		"container":              container,
		"namespace":              t.Config.Namespace,
		"strong_consistency":     health.StrongConsistency,
		"replication_factor":     health.ReplicationFactor,
		"ns_cluster_size":        health.ClusterSize,
		"dead_partitions":        health.DeadPartitions,
		"unavailable_partitions": health.UnavailablePartitions,
		"objects":                health.Objects,
		"tombstones":             infoInt(params, "tombstones"),
	}))
}

func infoInt(params map[string]string, key string) int {
	n, _ := strconv.Atoi(params[key])
	return n
}
