package httperr

import (
	"encoding/json"
	"net/http"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Status maps an error kind to its HTTP status code.
func Status(k fail.Kind) int {
	switch k {
	case fail.Validation:
		return http.StatusUnprocessableEntity
	case fail.NotFound:
		return http.StatusNotFound
	case fail.Conflict:
		return http.StatusConflict
	case fail.Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FieldError is one entry of a problem body, in list order.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Problem is an RFC 9457 problem details body built from a failure list.
type Problem struct {
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// NewProblem builds a Problem from a non-empty failure list. The status is
// derived from the first error's kind; entries keep list order.
func NewProblem(errs fail.List) *Problem {
	first := errs.First()
	p := &Problem{
		Title:  title(first.Kind()),
		Status: Status(first.Kind()),
		Detail: first.Message(),
		Errors: make([]FieldError, 0, len(errs)),
	}
	for _, e := range errs {
		p.Errors = append(p.Errors, FieldError{
			Code:    e.Code(),
			Message: e.Message(),
			Field:   e.Field(),
		})
	}
	return p
}

// Write sends the problem as application/problem+json.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// Respond folds a Result at the HTTP boundary: a success is encoded as JSON
// with successStatus, a failure becomes a problem body.
func Respond[T any](w http.ResponseWriter, r rail.Result[T], successStatus int) {
	if r.IsFailure() {
		NewProblem(r.Errors()).Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	_ = json.NewEncoder(w).Encode(r.Value())
}

func title(k fail.Kind) string {
	switch k {
	case fail.Validation:
		return "Validation Error"
	case fail.NotFound:
		return "Not Found"
	case fail.Conflict:
		return "Conflict"
	case fail.Unauthorized:
		return "Unauthorized"
	default:
		return "Internal Error"
	}
}
