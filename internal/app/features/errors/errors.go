// internal/app/features/errors/errors.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and writes the JSON error body.
// The cause is logged, never returned to the client.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg and err with request context and writes a 500
// with publicMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, publicMsg string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	jsonutil.Error(w, http.StatusInternalServerError, publicMsg)
}

// Respond maps err to a status:
//
//	bad body, validation failure, duplicate → 400 with its message
//	crud.ErrNotFound                        → 404 "<entity> not found"
//	anything else                           → 500 "Failed to <action>"
func (e *ErrorLogger) Respond(w http.ResponseWriter, r *http.Request, err error, entity, action string) {
	var ve *inputval.Error
	switch {
	case stderrors.Is(err, jsonutil.ErrBadBody):
		jsonutil.Error(w, http.StatusBadRequest, jsonutil.ErrBadBody.Error())
	case stderrors.As(err, &ve):
		jsonutil.Error(w, http.StatusBadRequest, ve.Message)
	case stderrors.Is(err, crud.ErrDuplicate):
		jsonutil.Error(w, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, crud.ErrNotFound):
		jsonutil.Error(w, http.StatusNotFound, entity+" not found")
	default:
		e.LogServerError(w, r, action+" failed", err, "Failed to "+action)
	}
}
