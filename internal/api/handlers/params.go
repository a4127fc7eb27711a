package handlers

import (
	"strconv"
	"strings"

	"SmartServe-Backend/domain"
)

// parseID parses a positive integer route or query parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

// parseUserID is parseID with the user-flavoured error code.
func parseUserID(raw string) (uint, error) {
	id, err := parseID(raw)
	if err != nil {
		return 0, domain.ErrInvalidUserID
	}
	return id, nil
}
