package utils

import (
	"regexp"
	"strings"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
)

var (
	validUserIdRegex    = regexp.MustCompile(consts.ValidUserId)
	validSessionIdRegex = regexp.MustCompile(consts.ValidSessionId)
)

// IsValidUserId checks the customer identifier against the allowed charset
// and length.
func IsValidUserId(userId string) (bool, error) {
	if !validUserIdRegex.MatchString(userId) {
		return false, consts.ErrorUserIdFormatValidationFailed
	}
	return true, nil
}

// IsValidSessionId checks a client-supplied session id. Some web clients
// send the literal string "undefined" for a missing id; treat that as absent
// rather than invalid.
func IsValidSessionId(sessionId string) (bool, error) {
	if strings.HasPrefix(sessionId, "undefined") {
		return false, nil
	}
	if !validSessionIdRegex.MatchString(sessionId) {
		return false, consts.ErrorSessionIdFormatValidationFailed
	}
	return true, nil
}
