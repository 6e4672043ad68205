package calendar

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studysync/internal/domain"
)

// ErrInvalidShareCode is returned for codes that do not decode to a deadline list.
var ErrInvalidShareCode = errors.New("invalid share code")

// EncodeShareCode packs assignments into a base64 JSON share code.
func EncodeShareCode(assignments []*domain.Assignment) (string, error) {
	if assignments == nil {
		assignments = []*domain.Assignment{}
	}
	b, err := json.Marshal(assignments)
	if err != nil {
		return "", fmt.Errorf("encoding share code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeShareCode unpacks a share code. Every decoded assignment must carry a
// title and a due date.
func DecodeShareCode(code string) ([]*domain.Assignment, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty code: %w", ErrInvalidShareCode)
	}
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareCode, err)
	}
	var out []*domain.Assignment
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareCode, err)
	}
	for i, a := range out {
		if a == nil {
			return nil, fmt.Errorf("entry %d is null: %w", i, ErrInvalidShareCode)
		}
		if strings.TrimSpace(a.Title) == "" || a.Due.IsZero() {
			return nil, fmt.Errorf("entry %d lacks a title or due date: %w", i, ErrInvalidShareCode)
		}
	}
	return out, nil
}

// Merge combines two deadline lists, keeping the first assignment seen for
// each course, title and due date. Order of first appearance is preserved.
func Merge(mine, theirs []*domain.Assignment) []*domain.Assignment {
	seen := make(map[string]bool, len(mine)+len(theirs))
	out := make([]*domain.Assignment, 0, len(mine)+len(theirs))
	for _, list := range [][]*domain.Assignment{mine, theirs} {
		for _, a := range list {
			key := a.MergeKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, a)
		}
	}
	return out
}
