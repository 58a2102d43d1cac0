package app

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Route paths, checked in this order.
const (
	PathReady   = "/ready"
	PathRoot    = "/"
	PathHealthz = "/healthz"
)

// TimeLayout is ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ReadyBody is the /ready response.
type ReadyBody struct {
	Status   string `json:"status"`
	UptimeMS int64  `json:"uptime_ms"`
}

// GreetingBody is the / and /healthz response.
type GreetingBody struct {
	Message string `json:"message"`
	Counter int64  `json:"counter"`
	Time    string `json:"time"`
}

// ErrorBody is returned for unmatched routes.
type ErrorBody struct {
	Error string `json:"error"`
}

// Response is a status code plus a body that encodes to a JSON object.
type Response struct {
	Status int
	Body   any
}

// Router maps a request path to one of three fixed responses.
type Router struct {
	state  *State
	logger *logrus.Entry
}

// NewRouter returns a Router that owns the given state.
func NewRouter(state *State, logger *logrus.Logger) *Router {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Router{
		state:  state,
		logger: logger.WithField("component", "router"),
	}
}

// Handle classifies path and builds the response. Only the greeting
// routes touch the counter.
func (rt *Router) Handle(path string) Response {
	switch path {
	case PathReady:
		return Response{
			Status: http.StatusOK,
			Body: ReadyBody{
				Status:   "ok",
				UptimeMS: rt.state.Uptime().Milliseconds(),
			},
		}
	case PathRoot, PathHealthz:
		n := rt.state.Next()
		return Response{
			Status: http.StatusOK,
			Body: GreetingBody{
				Message: "hello",
				Counter: n,
				Time:    rt.state.Now().UTC().Format(TimeLayout),
			},
		}
	default:
		return Response{
			Status: http.StatusNotFound,
			Body:   ErrorBody{Error: "not_found"},
		}
	}
}

// ServeHTTP answers any method; only the URL path is inspected.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := rt.Handle(r.URL.Path)
	if resp.Status == http.StatusNotFound {
		rt.logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("no route")
	}

	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(resp.Body)
	if err != nil {
		rt.logger.WithError(err).Error("encoding response")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal"}`))
		return
	}

	w.WriteHeader(resp.Status)
	w.Write(data)
}
