package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/render"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal("failed to load env", "err", err)
	}
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newRouter(sshHost),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("Starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newRouter serves the landing page and the controls list.
func newRouter(sshHost string) *mux.Router {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	page = strings.ReplaceAll(page, "{{.Controls}}", strings.Join(render.HelpLines, "\n"))

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}).Methods(http.MethodGet)
	r.HandleFunc("/controls", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, line := range render.HelpLines {
			fmt.Fprintln(w, line)
		}
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}
