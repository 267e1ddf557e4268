package looksrare

import (
	"fmt"
	"strings"
)

type Status int

const (
	StatusCancelled Status = iota
	StatusExecuted
	StatusExpired
	StatusValid
)

var statusNames = map[Status]string{
	StatusCancelled: "CANCELLED",
	StatusExecuted:  "EXECUTED",
	StatusExpired:   "EXPIRED",
	StatusValid:     "VALID",
}

type Sort int

const (
	SortExpiringSoon Sort = iota
	SortNewest
	SortPriceAsc
	SortPriceDesc
)

var sortNames = map[Sort]string{
	SortExpiringSoon: "EXPIRING_SOON",
	SortNewest:       "NEWEST",
	SortPriceAsc:     "PRICE_ASC",
	SortPriceDesc:    "PRICE_DESC",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Sort) String() string {
	if name, ok := sortNames[s]; ok {
		return name
	}
	return fmt.Sprintf("sort(%d)", int(s))
}

// ParseStatus accepts the wire form, case-insensitively.
func ParseStatus(v string) (Status, error) {
	for s, name := range statusNames {
		if strings.EqualFold(name, v) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", v)
}

// ParseSort accepts the wire form, case-insensitively.
func ParseSort(v string) (Sort, error) {
	for s, name := range sortNames {
		if strings.EqualFold(name, v) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sort %q", v)
}

func (s Status) wireValue() (string, error) {
	name, ok := statusNames[s]
	if !ok {
		return "", fmt.Errorf("%w: %s has no wire form", ErrSerialization, s)
	}
	return name, nil
}

func (s Sort) wireValue() (string, error) {
	name, ok := sortNames[s]
	if !ok {
		return "", fmt.Errorf("%w: %s has no wire form", ErrSerialization, s)
	}
	return name, nil
}
