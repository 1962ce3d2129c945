package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

func decodeUsers(location string, raw []byte) ([]entity.UserRecord, error) {
	var users []entity.UserRecord
	var err error
	if isSpreadsheet(location) {
		err = decodeSheet(raw, "", &users)
	} else {
		err = decodeJSONArray(raw, &users)
	}
	if err != nil {
		return nil, entity.NewParseError(location, err)
	}
	return users, nil
}

func decodeUsages(location string, raw []byte, wrapper string) ([]entity.UsageRecord, error) {
	var usages []entity.UsageRecord
	var err error
	if isSpreadsheet(location) {
		err = decodeSheet(raw, wrapper, &usages)
	} else {
		err = decodeWrapped(raw, wrapper, &usages)
	}
	if err != nil {
		return nil, entity.NewParseError(location, err)
	}
	return usages, nil
}

// decodeJSONArray decodes a top-level JSON array. null is rejected.
func decodeJSONArray(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("expected a JSON array of records")
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decoding records: %w", err)
	}
	return nil
}

// decodeWrapped unwraps the named container field before decoding the records.
func decodeWrapped(raw []byte, wrapper string, out interface{}) error {
	var container map[string]json.RawMessage
	if err := json.Unmarshal(raw, &container); err != nil {
		return fmt.Errorf("decoding %q wrapper object: %w", wrapper, err)
	}

	body, ok := container[wrapper]
	if !ok {
		return fmt.Errorf("wrapper field %q not found", wrapper)
	}
	if err := decodeJSONArray(body, out); err != nil {
		return fmt.Errorf("wrapper field %q: %w", wrapper, err)
	}
	return nil
}
