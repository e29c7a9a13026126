// Package payloads holds request bodies for Bot API methods and decodes
// their responses. Sending the bytes is left to a Requester.
package payloads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"

	"github.com/reshetovitsme/tgtypes/pkg/types"
)

// Requester performs one Bot API call: it posts body as JSON to method and
// returns the raw response body.
type Requester interface {
	Do(ctx context.Context, method string, body []byte) ([]byte, error)
}

// Payload is a request body for a Bot API method.
type Payload interface {
	Method() string
}

// APIError is a response with "ok": false.
type APIError struct {
	Code        int
	Description string
	// RetryAfter is set when the request was rate limited.
	RetryAfter time.Duration
	// MigrateToChatID is set when the group was upgraded to a supergroup.
	MigrateToChatID types.ChatID
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s (code %d)", e.Description, e.Code)
}

type response struct {
	OK          bool                      `json:"ok"`
	Result      json.RawMessage           `json:"result"`
	Description string                    `json:"description"`
	ErrorCode   int                       `json:"error_code"`
	Parameters  *types.ResponseParameters `json:"parameters"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the constraints declared on a payload's fields.
func Validate(p Payload) error {
	if err := validate.Struct(p); err != nil {
		return oops.
			In("payloads").
			With("method", p.Method()).
			Wrapf(err, "invalid payload")
	}
	return nil
}

// DecodeResponse decodes a raw response body into R, or into an *APIError
// when the call failed.
func DecodeResponse[R any](raw []byte) (R, error) {
	var result R

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return result, oops.
			In("payloads").
			Wrapf(err, "failed to decode response")
	}

	if !resp.OK {
		apiErr := &APIError{Code: resp.ErrorCode, Description: resp.Description}
		if p := resp.Parameters; p != nil {
			apiErr.MigrateToChatID = p.MigrateToChatID
			if p.RetryAfter != nil {
				apiErr.RetryAfter = p.RetryAfter.Duration()
			}
		}
		return result, apiErr
	}

	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return result, oops.
			In("payloads").
			Wrapf(err, "failed to decode result")
	}
	return result, nil
}

func send[R any](ctx context.Context, rq Requester, p Payload) (R, error) {
	var zero R

	if err := Validate(p); err != nil {
		return zero, err
	}

	body, err := json.Marshal(p)
	if err != nil {
		return zero, oops.
			In("payloads").
			With("method", p.Method()).
			Wrapf(err, "failed to encode request")
	}

	raw, err := rq.Do(ctx, p.Method(), body)
	if err != nil {
		return zero, oops.
			In("payloads").
			With("method", p.Method()).
			Wrapf(err, "request failed")
	}

	return DecodeResponse[R](raw)
}
