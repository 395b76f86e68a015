package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"employee-api/internal/employee/models"
	dErrors "employee-api/pkg/domain-errors"
)

// translateStatus maps an upstream status code to the local taxonomy.
// 2xx returns nil.
func translateStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, "upstream returned 404")
	case status == http.StatusTooManyRequests:
		return dErrors.New(dErrors.CodeTooManyRequests, "upstream returned 429")
	case status >= 500:
		return dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("upstream returned %d", status))
	default:
		return dErrors.New(dErrors.CodeBadUpstreamRequest, fmt.Sprintf("upstream returned %d", status))
	}
}

// isRetryable reports whether a translated error is a transient upstream failure.
func isRetryable(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeTooManyRequests) ||
		dErrors.HasCode(err, dErrors.CodeUnavailable)
}

// decodeEnvelope unwraps {data, status}. An empty body yields a zero envelope.
func decodeEnvelope[T any](body []byte) (models.Envelope[T], error) {
	var env models.Envelope[T]
	if len(bytes.TrimSpace(body)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, dErrors.Wrap(err, dErrors.CodeUpstreamProtocol, "malformed upstream envelope")
	}
	return env, nil
}
