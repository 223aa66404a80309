package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
)

// HandleError maps domain errors to HTTP responses. Import shape problems
// are the caller's fault (400); anything unrecognized is a store failure and
// surfaces with its message as a 500, untried again.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoFile),
		errors.Is(err, session.ErrEmptySheet),
		errors.Is(err, session.ErrNoWorksheet),
		errors.Is(err, session.ErrMultipleSheets),
		errors.Is(err, session.ErrMissingColumns),
		errors.Is(err, session.ErrUnsupportedFile):
		BadRequest(w, err.Error())

	default:
		InternalServerError(w, err.Error())
	}
}
