// Package homework contains the domain model of the bot: the homework review
// statuses known to the Practicum API, the verdict catalog that translates them
// into chat messages, and the error kinds the rest of the application matches on.
package homework

import "fmt"

// Review statuses reported by the Practicum API.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// verdicts maps a review status to its human-readable verdict text.
// Fixed at startup; a status outside this map is a validation error.
var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the verdict text for a status.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// ParseStatus extracts the homework name and status from a single raw record of
// the API response and renders the notification message. It is a pure function
// of (record, catalog): the same record always yields the same message.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", NewError("ParseStatus", ErrShape,
			fmt.Sprintf("homework record is not an object: %v", record))
	}

	name, ok := hw["homework_name"].(string)
	if !ok {
		return "", NewError("ParseStatus", ErrShape,
			fmt.Sprintf("homework record has no 'homework_name' key: %v", hw))
	}

	status, ok := hw["status"].(string)
	if !ok {
		return "", NewError("ParseStatus", ErrShape,
			fmt.Sprintf("homework record has no 'status' key: %v", hw))
	}

	verdict, ok := Verdict(status)
	if !ok {
		return "", NewError("ParseStatus", ErrUnknownStatus,
			fmt.Sprintf("status %q is not in the verdict catalog", status))
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}
