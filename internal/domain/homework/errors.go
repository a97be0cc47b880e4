// internal/domain/homework/errors.go
package homework

import "fmt"

// Fetch and validation failures, all recoverable at the poll-cycle boundary.
var (
	ErrEndpointUnavailable  = fmt.Errorf("homework endpoint unavailable")
	ErrUnexpectedStatusCode = fmt.Errorf("unexpected status code from homework endpoint")
	ErrMalformedPayload     = fmt.Errorf("homework payload is not valid JSON")
	ErrNotMapping           = fmt.Errorf("homework payload is not a JSON object")
	ErrNoHomeworksKey       = fmt.Errorf(`homework payload has no "homeworks" key`)
	ErrHomeworksNotList     = fmt.Errorf(`value under "homeworks" is not a list`)
	ErrUndocumentedStatus   = fmt.Errorf("undocumented homework status")
)
