package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Disposition decides how the offline transition of a user whose last
// session just closed is applied.
type Disposition int

const (
	// OfflineImmediately: the closure was expected, flip the user offline now.
	OfflineImmediately Disposition = iota
	// OfflineAfterGrace: the closure looks like a network blip, re-check
	// after the grace period before flipping.
	OfflineAfterGrace
)

// Default "expected termination" websocket close codes: normal closure,
// going away, and abnormal closure without a status code. Which codes count
// as expected is a policy choice, hence configurable.
var DefaultNormalCloseCodes = []int{1000, 1001, 1006}

// ClosePolicy classifies websocket close codes into immediate or deferred
// offline transitions.
type ClosePolicy struct {
	normal map[int]struct{}
}

func NewClosePolicy(normalCodes []int) ClosePolicy {
	normal := make(map[int]struct{}, len(normalCodes))
	for _, code := range normalCodes {
		normal[code] = struct{}{}
	}
	return ClosePolicy{normal: normal}
}

func (p ClosePolicy) Classify(closeCode int) Disposition {
	if _, ok := p.normal[closeCode]; ok {
		return OfflineImmediately
	}
	return OfflineAfterGrace
}

// ParseCloseCodes parses a comma-separated close code list, e.g. "1000,1001,1006".
func ParseCloseCodes(raw string) ([]int, error) {
	var codes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid close code %q: %w", part, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
