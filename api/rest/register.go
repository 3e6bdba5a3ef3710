package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the id generated for every request.
	RequestIDHeader = "X-Request-Id"

	maxBodyBytes = 1 << 20
)

// RegisterFunc registers the typed endpoint fn on mux under "method path".
// A JSON body is decoded into Req, then path wildcards are copied into the
// fields whose json tag matches the wildcard name.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, path string, fn func(ctx context.Context, req *Req) (*Resp, error)) {
	params := pathParams(path)
	mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(RequestIDHeader, requestID)
		logger := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		req, err := decodeRequest[Req](r, params)
		if err != nil {
			logger.WithError(err).Warn("Failed to decode request")
			writeErr(logger, w, NewErrf(http.StatusBadRequest, "Malformed request body"))
			return
		}

		resp, err := fn(r.Context(), req)
		if err != nil {
			writeErr(logger, w, err)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func decodeRequest[Req any](r *http.Request, params []string) (*Req, error) {
	req := new(Req)
	if r.Body != nil && r.ContentLength != 0 {
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode body: %w", err)
		}
	}
	if len(params) == 0 {
		return req, nil
	}

	// path values win over body fields of the same name
	values := make(map[string]string, len(params))
	for _, name := range params {
		values[name] = r.PathValue(name)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshal path values: %w", err)
	}
	err = json.Unmarshal(data, req)
	if err != nil {
		return nil, fmt.Errorf("unmarshal path values: %w", err)
	}

	return req, nil
}

// pathParams returns the wildcard names of a ServeMux path pattern.
func pathParams(path string) []string {
	var params []string
	for _, segment := range strings.Split(path, "/") {
		if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
			continue
		}
		name := strings.TrimSuffix(strings.Trim(segment, "{}"), "...")
		if name != "" && name != "$" {
			params = append(params, name)
		}
	}

	return params
}

func writeErr(logger *logrus.Entry, w http.ResponseWriter, err error) {
	apiErr := &Err{}
	if !errors.As(err, &apiErr) {
		logger.WithError(err).Error("Handler returned an unexpected error")
		apiErr = errInternal
	}

	writeJSON(logger, w, apiErr.StatusCode, apiErr)
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.WithError(err).Error("Failed to write response")
	}
}
