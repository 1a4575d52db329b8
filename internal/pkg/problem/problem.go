// Package problem renders RFC 7807 problem-detail responses, the error body
// shape shared by every service.
package problem

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/doni/social-network/internal/pkg/messages"
)

// ContentType is the media type for problem-detail bodies.
const ContentType = "application/problem+json"

// Detail is an RFC 7807 problem-detail body. Code is an extension member
// that carries a machine-readable reason (not_owner, not_participant,
// already_exists) so callers do not have to parse the localized detail text.
type Detail struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Status   int      `json:"status"`
	Detail   string   `json:"detail"`
	Instance string   `json:"instance,omitempty"`
	Code     string   `json:"code,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// New creates a problem detail for the given status and detail text.
func New(status int, detail string) *Detail {
	return &Detail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// WithCode sets the machine-readable reason code.
func (d *Detail) WithCode(code string) *Detail {
	d.Code = code
	return d
}

// WithErrors attaches the per-field validation messages.
func (d *Detail) WithErrors(errs []string) *Detail {
	d.Errors = errs
	return d
}

// Abort writes the problem detail and stops handler processing. The instance
// member is filled from the request path when not already set.
func Abort(c *gin.Context, d *Detail) {
	if d.Instance == "" && c.Request != nil && c.Request.URL != nil {
		d.Instance = c.Request.URL.Path
	}
	body, err := json.Marshal(d)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Abort()
	c.Data(d.Status, ContentType, body)
}

// MessageKeys maps "<StructField>.<tag>" of a binding violation to the
// message key of its localized text.
type MessageKeys map[string]string

// AbortBinding translates a gin binding error into a 400 problem detail with
// the localized violation messages in the errors member. Non-validator errors
// (malformed JSON and the like) produce the bare bad-request detail.
func AbortBinding(c *gin.Context, err error, keys MessageKeys) {
	d := New(http.StatusBadRequest, messages.BadRequest)

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		errs := make([]string, 0, len(violations))
		for _, violation := range violations {
			if key, ok := keys[violation.StructField()+"."+violation.Tag()]; ok {
				errs = append(errs, messages.Get(key))
			} else {
				errs = append(errs, violation.Error())
			}
		}
		d.Errors = errs
	}

	Abort(c, d)
}
