package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/internal/httputilx"
	"github.com/shekhars271991/as-strongconsistancy/internal/stringsx"
	"github.com/shekhars271991/as-strongconsistancy/internal/systemx"
	"github.com/shekhars271991/as-strongconsistancy/shell"
)

const featureKeyDir = "aerolab-setup"

// createRequest the guided setup parameters sent over the websocket.
type createRequest struct {
	ClusterName    string `json:"cluster_name"`
	NodeCount      int    `json:"node_count"`
	FeatureKeyPath string `json:"feature_key_path"`
}

// setup steps reported to the browser.
const (
	stepBackend = "backend"
	stepCheck   = "check"
	stepCreate  = "create"
	stepSC      = "sc"
	stepReady   = "ready"
)

type stepStatus string

const (
	statusRunning stepStatus = "running"
	statusDone    stepStatus = "done"
	statusError   stepStatus = "error"
	statusSkip    stepStatus = "skip"
)

func (t *Server) checkPrerequisites(resp http.ResponseWriter, req *http.Request) {
	var (
		buf bytes.Buffer
		ctx = req.Context()
	)

	dockerVersion := shell.DockerVersion(ctx)
	aerolabVersion := shell.AerolabVersion(ctx)

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"docker": map[string]interface{}{
			"installed": dockerVersion != "",
			"running":   dockerVersion != "" && shell.DockerRunning(ctx),
			"version":   dockerVersion,
		},
		"aerolab": map[string]interface{}{
			"installed": aerolabVersion != "",
			"version":   aerolabVersion,
		},
		"existing_cluster": shell.DetectContainer(ctx, t.Config.ContainerPrefix),
		"feature_key":      locateFeatureKey(),
	}))
}

// locateFeatureKey probes the conventional locations for an aerospike feature
// key file, returning the first hit or the empty string.
func locateFeatureKey() string {
	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(featureKeyDir, "features.conf"),
		"features.conf",
		filepath.Join(home, "features.conf"),
		filepath.Join(home, "aerospike", "features.conf"),
	}

	for _, p := range candidates {
		if systemx.FileExists(p) {
			return p
		}
	}

	return ""
}

// createClusterFallback rejects plain POST creation; the operation streams
// progress and must run over the websocket endpoint.
func (t *Server) createClusterFallback(resp http.ResponseWriter, req *http.Request) {
	var (
		buf bytes.Buffer
	)

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"success": false,
		"error":   "Please use the WebSocket endpoint for cluster creation",
	}))
}

func (t *Server) destroyCluster(resp http.ResponseWriter, req *http.Request) {
	var (
		buf     bytes.Buffer
		request createRequest
	)

	if err := json.NewDecoder(req.Body).Decode(&request); err != nil && err.Error() != "EOF" {
		resp.Header().Set("Content-Type", "application/json")
		resp.WriteHeader(http.StatusBadRequest)
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}))
		return
	}

	name := stringsx.DefaultIfBlank(request.ClusterName, "mydc")
	if _, err := shell.AerolabDestroy(req.Context(), name); err != nil {
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}))
		return
	}

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Cluster '%s' destroyed", name),
	}))
}

func (t *Server) uploadFeatureKey(resp http.ResponseWriter, req *http.Request) {
	var (
		buf     bytes.Buffer
		request struct {
			Content string `json:"content"`
		}
	)

	if err := json.NewDecoder(req.Body).Decode(&request); err != nil || strings.TrimSpace(request.Content) == "" {
		resp.Header().Set("Content-Type", "application/json")
		resp.WriteHeader(http.StatusBadRequest)
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"success": false,
			"error":   "missing feature key content",
		}))
		return
	}

	path := filepath.Join(featureKeyDir, "features.conf")
	if err := os.MkdirAll(featureKeyDir, 0755); err != nil {
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}))
		return
	}

	if err := os.WriteFile(path, []byte(request.Content), 0600); err != nil {
		errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}))
		return
	}

	errorsx.MaybeLog(httputilx.WriteJSON(resp, &buf, map[string]interface{}{
		"success": true,
		"path":    path,
	}))
}

// createClusterSocket drives the guided aerolab setup, streaming each step's
// progress and command output to the browser.
func (t *Server) createClusterSocket(resp http.ResponseWriter, req *http.Request) {
	conn, err := t.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		errorsx.MaybeLog(err)
		return
	}
	defer conn.Close()

	var (
		ctx     = req.Context()
		request = createRequest{ClusterName: "mydc", NodeCount: 1}
	)

	if err = conn.ReadJSON(&request); err != nil {
		t.result(conn, false, "invalid setup request: "+err.Error())
		return
	}

	request.ClusterName = stringsx.DefaultIfBlank(request.ClusterName, "mydc")
	if request.NodeCount < 1 {
		request.NodeCount = 1
	}

	sink := func(line string) {
		errorsx.MaybeLog(conn.WriteJSON(map[string]interface{}{"type": "log", "data": line}))
	}

	t.step(conn, stepBackend, statusRunning, "Configuring docker backend")
	if code, serr := shell.Stream(ctx, sink, "aerolab", "config", "backend", "-t", "docker"); serr != nil || code != 0 {
		t.step(conn, stepBackend, statusError, "Failed to configure docker backend")
		t.result(conn, false, "aerolab backend configuration failed")
		return
	}
	t.step(conn, stepBackend, statusDone, "Docker backend configured")

	t.step(conn, stepCheck, statusRunning, "Checking for existing cluster")
	if shell.AerolabClusterExists(ctx, request.ClusterName) {
		t.step(conn, stepCheck, statusSkip, fmt.Sprintf("Cluster '%s' already exists", request.ClusterName))
		t.step(conn, stepCreate, statusSkip, "Reusing existing cluster")
	} else {
		t.step(conn, stepCheck, statusDone, "No existing cluster found")

		args := []string{"cluster", "create", "-n", request.ClusterName, "-c", fmt.Sprintf("%d", request.NodeCount)}
		if key := stringsx.DefaultIfBlank(request.FeatureKeyPath, locateFeatureKey()); key != "" {
			args = append(args, "-f", key)
		}

		t.step(conn, stepCreate, statusRunning, fmt.Sprintf("Creating cluster '%s' (%d node(s))", request.ClusterName, request.NodeCount))
		if code, serr := shell.Stream(ctx, sink, "aerolab", args...); serr != nil || code != 0 {
			t.step(conn, stepCreate, statusError, "Cluster creation failed")
			t.result(conn, false, "aerolab cluster create failed")
			return
		}
		t.step(conn, stepCreate, statusDone, "Cluster created")
	}

	t.step(conn, stepSC, statusRunning, "Enabling strong consistency")
	if code, serr := shell.Stream(ctx, sink, "aerolab", "conf", "sc", "-n", request.ClusterName); serr != nil || code != 0 {
		t.step(conn, stepSC, statusError, "Failed to enable strong consistency")
		t.result(conn, false, "aerolab conf sc failed")
		return
	}
	t.step(conn, stepSC, statusDone, "Strong consistency enabled")

	t.step(conn, stepReady, statusRunning, "Waiting for the server to answer")
	container := shell.DetectContainer(ctx, t.Config.ContainerPrefix)
	if container == "" || !shell.ServerReady(ctx, container, 15, 2*time.Second) {
		t.step(conn, stepReady, statusError, "Server did not become ready")
		t.result(conn, false, "server never reported ok; inspect the container logs")
		return
	}
	t.step(conn, stepReady, statusDone, "Server is ready")

	t.result(conn, true, fmt.Sprintf("Cluster '%s' is running with strong consistency", request.ClusterName))
}

func (t *Server) step(conn *websocket.Conn, step string, status stepStatus, message string) {
	errorsx.MaybeLog(conn.WriteJSON(map[string]interface{}{
		"type":    "step",
		"step":    step,
		"status":  status,
		"message": message,
	}))
}

func (t *Server) result(conn *websocket.Conn, success bool, message string) {
	errorsx.MaybeLog(conn.WriteJSON(map[string]interface{}{
		"type":    "result",
		"success": success,
		"message": message,
	}))
}
