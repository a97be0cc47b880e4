// internal/domain/homework/homework.go
package homework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Status is the review state the API reports for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every documented review status to its human-readable verdict
// text. A status outside this table is undocumented and must be rejected.
var Verdicts = map[Status]string{
	StatusApproved:  "Review finished: the reviewer liked everything. Hooray!",
	StatusReviewing: "The submission was taken for review.",
	StatusRejected:  "Review finished: the reviewer left some remarks.",
}

// Homework is a single record from the API's homeworks list. It lives for one
// poll cycle only and is never persisted.
type Homework struct {
	HomeworkName string `json:"homework_name"`
	Status       Status `json:"status"`
}

// StatusResponse is the validated payload of one statuses fetch.
// CurrentDate is 0 when the payload carried no usable current_date value.
type StatusResponse struct {
	Homeworks   []Homework
	CurrentDate int64
}

// Client fetches homework statuses from the review API.
type Client interface {
	// Statuses returns the raw JSON payload for submissions updated at or
	// after fromDate (UNIX seconds).
	Statuses(ctx context.Context, fromDate int64) ([]byte, error)
}

// CheckResponse validates the shape of a fetched payload: it must be a JSON
// object whose "homeworks" key holds a list. The optional current_date field
// is picked up when present and numeric, and ignored otherwise.
func CheckResponse(payload []byte) (*StatusResponse, error) {
	if !json.Valid(payload) {
		return nil, ErrMalformedPayload
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return nil, ErrNotMapping
	}

	rawList, ok := top["homeworks"]
	if !ok {
		return nil, ErrNoHomeworksKey
	}
	if string(bytes.TrimSpace(rawList)) == "null" {
		return nil, ErrHomeworksNotList
	}
	var homeworks []Homework
	if err := json.Unmarshal(rawList, &homeworks); err != nil {
		return nil, ErrHomeworksNotList
	}

	resp := &StatusResponse{Homeworks: homeworks}
	if rawDate, ok := top["current_date"]; ok {
		var currentDate int64
		if err := json.Unmarshal(rawDate, &currentDate); err == nil {
			resp.CurrentDate = currentDate
		}
	}
	return resp, nil
}

// ParseStatus composes the notification text for a single record, or fails
// when the record carries a status outside the documented set.
func ParseStatus(hw Homework) (string, error) {
	verdict, ok := Verdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUndocumentedStatus, hw.Status)
	}
	return fmt.Sprintf("Status changed for submission %q: %s", hw.HomeworkName, verdict), nil
}
