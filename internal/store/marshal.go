package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/textwire/internal/wire"
)

// marshalErrors converts failure messages to canonical JSON TEXT.
func marshalErrors(errs []string) (string, error) {
	if errs == nil {
		errs = []string{}
	}
	data, err := wire.MarshalCanonical(errs)
	if err != nil {
		return "", fmt.Errorf("marshal errors: %w", err)
	}
	return string(data), nil
}

// unmarshalErrors parses the errors column. Returns an empty slice, not
// nil, when there are none.
func unmarshalErrors(data string) ([]string, error) {
	errs := []string{}
	if data == "" || data == "[]" {
		return errs, nil
	}
	if err := json.Unmarshal([]byte(data), &errs); err != nil {
		return nil, fmt.Errorf("unmarshal errors: %w", err)
	}
	return errs, nil
}
