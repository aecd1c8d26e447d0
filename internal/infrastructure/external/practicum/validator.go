package practicum

import (
	"fmt"

	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
)

// CheckResponse validates the shape of a decoded API response and returns the
// raw homework records in API order. Element-level validation is deferred to
// homework.ParseStatus. An empty list is a valid result, not an error.
func CheckResponse(response any) ([]any, error) {
	obj, ok := response.(map[string]any)
	if !ok {
		return nil, homework.NewError("CheckResponse", homework.ErrShape,
			fmt.Sprintf("response is not an object: %v", response))
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, homework.NewError("CheckResponse", homework.ErrShape,
			fmt.Sprintf("response has no 'homeworks' key: %v", obj))
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, homework.NewError("CheckResponse", homework.ErrShape,
			fmt.Sprintf("'homeworks' is not a list: %v", raw))
	}

	return homeworks, nil
}
