package usecase

import (
	"fmt"
	"net"
	"net/http"
	"sync"
)

// callbackResult is what a meaningful callback request delivers.
type callbackResult struct {
	code     string
	state    string
	errParam string
}

// callbackServer is a one-shot HTTP listener for the OAuth redirect.
// The first request carrying a code or error parameter resolves the
// flow; every later request just gets the success page.
type callbackServer struct {
	port     int
	listener net.Listener
	server   *http.Server

	resultCh chan callbackResult
	once     sync.Once
}

func newCallbackServer(port int) *callbackServer {
	return &callbackServer{
		port:     port,
		resultCh: make(chan callbackResult, 1),
	}
}

// Start binds the port and begins serving. A bind failure is returned
// to the caller before any browser interaction happens.
func (s *callbackServer) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return err
	}
	s.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handleCallback)

	s.server = &http.Server{Handler: mux}
	go func() {
		_ = s.server.Serve(ln)
	}()
	return nil
}

func (s *callbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := q.Get("code")
	errParam := q.Get("error")

	// Requests without a code or error (favicon probes and the like)
	// do not resolve the flow.
	if code == "" && errParam == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, successHTML)
		return
	}

	s.once.Do(func() {
		s.resultCh <- callbackResult{
			code:     code,
			state:    q.Get("state"),
			errParam: errParam,
		}
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if errParam != "" {
		fmt.Fprint(w, errorHTML)
		return
	}
	fmt.Fprint(w, successHTML)
}

// Result exposes the one-shot channel the flow selects on.
func (s *callbackServer) Result() <-chan callbackResult {
	return s.resultCh
}

// Stop tears the server down immediately, dropping in-flight requests.
func (s *callbackServer) Stop() {
	if s.server != nil {
		_ = s.server.Close()
	}
}
