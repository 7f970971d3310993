package server

import (
	"encoding/json"
	"net/http"

	"github.com/nikogura/creatoros/pkg/collab"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

// requestError marks errors caused by the client's input.
type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }

func badRequest(err error) error {
	return requestError{err: err}
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) (status int) {
	var reqErr requestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest
	}

	switch errors.Cause(err) {
	case llm.ErrRateLimited:
		status = http.StatusTooManyRequests
	case llm.ErrPaymentRequired:
		status = http.StatusPaymentRequired
	case llm.ErrInvalidRequest:
		status = http.StatusBadRequest
	case errAssistantUnavailable:
		status = http.StatusServiceUnavailable
	case store.ErrNotFound:
		status = http.StatusNotFound
	case collab.ErrInvalidTransition, store.ErrSlugTaken:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	return status
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	log := s.logger.Debug
	if status >= http.StatusInternalServerError {
		log = s.logger.Error
	}
	log("request failed", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))

	writeJSON(w, status, errorBody{Error: err.Error()})
}

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) (err error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err = dec.Decode(v)
	if err != nil {
		err = badRequest(errors.Wrap(err, "invalid request body"))
		return err
	}
	return err
}

func writeHTML(w http.ResponseWriter, status int, document string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(document))
}
