// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"time"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// NicknameMinLength and NicknameMaxLength bound a member nickname,
	// in UTF-16 code units.
	NicknameMinLength = 1
	NicknameMaxLength = 32

	// CommunicationDisabledMaxDuration is how far in the future a
	// member timeout may end.
	CommunicationDisabledMaxDuration = 28 * 24 * time.Hour

	// AuditReasonMaxLength bounds an audit log reason, in characters.
	AuditReasonMaxLength = 512
)

// NicknameLength returns the length of nick in UTF-16 code units, the
// unit the service counts in.
func NicknameLength(nick string) int {
	length := 0
	for _, r := range nick {
		units := utf16.RuneLen(r)
		if units < 0 {
			units = 1
		}
		length += units
	}
	return length
}

// Nickname checks that nick is between NicknameMinLength and
// NicknameMaxLength UTF-16 code units.
func Nickname(nick string) error {
	length := NicknameLength(nick)
	if length < NicknameMinLength || length > NicknameMaxLength {
		return newError(KindNickname, "",
			"nickname must be %d to %d UTF-16 code units, got %d",
			NicknameMinLength, NicknameMaxLength, length)
	}
	return nil
}

// CommunicationDisabledUntil checks that a timeout ending at
// until, requested at now, lasts at most
// CommunicationDisabledMaxDuration. Times in the past are accepted; the
// service treats them as an immediate end of the timeout.
func CommunicationDisabledUntil(now, until time.Time) error {
	if remaining := until.Sub(now); remaining > CommunicationDisabledMaxDuration {
		return newError(KindCommunicationDisabledUntil, "",
			"timeout may end at most %s from now, requested %s",
			CommunicationDisabledMaxDuration, remaining.Truncate(time.Second))
	}
	return nil
}

// AuditReason checks that reason is at most
// AuditReasonMaxLength characters.
func AuditReason(reason string) error {
	if length := utf8.RuneCountInString(reason); length > AuditReasonMaxLength {
		return newError(KindAuditReason, "",
			"audit log reason must be at most %d characters, got %d",
			AuditReasonMaxLength, length)
	}
	return nil
}
