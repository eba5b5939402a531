package handlers

import (
	"errors"
	"net/http"

	"github.com/anddsdev/linda/internal/models"
	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/anddsdev/linda/internal/utils"
)

var errBadTTL = errors.New("ttl must be a non-negative integer")
var errBadMode = errors.New("mode must be \"once\", \"wait\", or a non-negative integer")

// tupleErr mirrors tuplespace's own (unexported) error constructor so HTTP
// handlers can report a request-shape problem the engine never saw (a
// malformed ttl or mode query parameter) using the same *Error/Kind
// vocabulary as everything the engine itself returns.
func tupleErr(op string, kind tuplespace.Kind, err error) *tuplespace.Error {
	return &tuplespace.Error{Op: op, Kind: kind, Err: err}
}

// statusAndOutcome maps an engine *Error's Kind onto an HTTP status code
// and the outcome string recorded in the audit log.
func statusAndOutcome(err error) (int, string) {
	spaceErr, ok := err.(*tuplespace.Error)
	if !ok {
		return http.StatusInternalServerError, "io-error"
	}

	switch spaceErr.Kind {
	case tuplespace.KindInvalidArgument:
		return http.StatusBadRequest, "invalid-argument"
	case tuplespace.KindNoMatch:
		return http.StatusNotFound, "no-match"
	case tuplespace.KindTimeout:
		return http.StatusRequestTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "io-error"
	}
}

func writeSpaceError(w http.ResponseWriter, err error) (status int, outcome string) {
	status, outcome = statusAndOutcome(err)
	utils.WriteJSON(w, status, models.ErrorResponse{
		Error:   true,
		Message: err.Error(),
		Status:  status,
		Kind:    outcome,
	})
	return status, outcome
}
