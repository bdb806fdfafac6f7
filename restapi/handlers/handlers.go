package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bnb-chain/subgraph-store/logging"
	"github.com/bnb-chain/subgraph-store/service"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Response is the envelope of every API answer
type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(err error) (int64, string) {
	switch e := err.(type) {
	case service.Err:
		return e.Code, e.Message
	case nil:
		return service.NoErr.Code, service.NoErr.Message
	default:
		return service.InternalErr.Code, err.Error()
	}
}

// NewRouter routes the status API to svc
func NewRouter(svc service.Status) *mux.Router {
	router := mux.NewRouter()
	router.Use(logRequests)
	router.Methods(http.MethodGet).Path("/status").HandlerFunc(HandleGetStatuses(svc))
	router.Methods(http.MethodGet).Path("/deployments/{deployment}").HandlerFunc(HandleGetDeployment(svc))
	return router
}

func writeResponse(w http.ResponseWriter, data interface{}, err error) {
	code, message := Error(err)
	payload := Response{
		Code:    code,
		Message: message,
	}
	status := http.StatusOK
	if err != nil {
		status = int(code)
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
	} else {
		payload.Data = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&payload); err != nil {
		logging.Logger.Errorf("failed to write response, err=%s", err.Error())
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)
		logging.Logger.Debugf("%s %s status=%d elapsed=%s", r.Method, r.URL.RequestURI(), rw.statusCode, time.Since(start))
	})
}
