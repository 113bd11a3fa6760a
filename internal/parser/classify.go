// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/service-launcher/models"
)

// DefaultLiteManagerMask is used when configuration does not provide a mask.
const DefaultLiteManagerMask = "MH_11111"

const anyDeskPrefix = "anydesk:"

// An alias is name@namespace. A dotted namespace, a port or a path make the
// input a server address instead.
var (
	anyDeskDigits  = regexp.MustCompile(`^\d{9,10}$`)
	anyDeskGrouped = regexp.MustCompile(`^\d{1,4}(?: \d{3}){2,3}$`)
	anyDeskAlias   = regexp.MustCompile(`^[\pL\pN._-]+@[\pL\pN_-]+$`)
)

// Classifier turns raw input into a [models.ConnectionRequest].
type Classifier struct {
	liteManager *regexp.Regexp
}

// NewClassifier compiles the LiteManager id mask. In the mask the digit '1'
// stands for any decimal digit and every other character matches itself,
// case-insensitively. An empty mask falls back to [DefaultLiteManagerMask].
func NewClassifier(liteManagerMask string) (*Classifier, error) {
	re, err := compileMask(liteManagerMask)
	if err != nil {
		return nil, err
	}
	return &Classifier{liteManager: re}, nil
}

func compileMask(mask string) (*regexp.Regexp, error) {
	mask = strings.TrimSpace(mask)
	if mask == "" {
		mask = DefaultLiteManagerMask
	}
	if !strings.ContainsRune(mask, '1') {
		return nil, fmt.Errorf("%w: %q has no digit placeholder", ErrInvalidMask, mask)
	}

	var b strings.Builder
	b.WriteString(`(?i)^`)
	for _, r := range mask {
		if r == '1' {
			b.WriteString(`\d`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteString(`$`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMask, err)
	}
	return re, nil
}

// Classify inspects raw and returns the first matching interpretation in the
// order AnyDesk id, LiteManager id, server address.
//
// Blank input yields [ErrEmptyInput]; input that matches nothing yields a
// request of kind [models.KindInvalid] together with a [*ParseError].
func (c *Classifier) Classify(raw string) (models.ConnectionRequest, error) {
	req := models.ConnectionRequest{RawInput: raw, Kind: models.KindInvalid}

	input := strings.TrimSpace(raw)
	if input == "" {
		return req, ErrEmptyInput
	}

	if id, ok := FindAnyDeskID(input); ok {
		req.Kind = models.KindAnyDeskID
		req.ID = id
		return req, nil
	}

	if id, ok := c.FindLiteManagerID(input); ok {
		req.Kind = models.KindLiteManagerID
		req.ID = id
		return req, nil
	}

	target, err := ParseTarget(input)
	if err != nil {
		return req, err
	}

	req.Kind = models.KindURL
	req.ID = target.Host
	req.Target = &target
	return req, nil
}

// IsRemoteID reports whether input is an AnyDesk or LiteManager id.
func (c *Classifier) IsRemoteID(input string) bool {
	input = strings.TrimSpace(input)
	if _, ok := FindAnyDeskID(input); ok {
		return true
	}
	_, ok := c.FindLiteManagerID(input)
	return ok
}

// FindLiteManagerID matches the whole input against the configured mask.
func (c *Classifier) FindLiteManagerID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if c.liteManager.MatchString(input) {
		return input, true
	}
	return "", false
}

// FindAnyDeskID recognizes the forms an AnyDesk address is usually copied in:
// a 9 or 10 digit number (returned verbatim), the same number grouped by
// single spaces as the AnyDesk window shows it (returned without spaces),
// an "anydesk:" prefixed number, and an alias such as "office@ad".
func FindAnyDeskID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if len(input) >= len(anyDeskPrefix) && strings.EqualFold(input[:len(anyDeskPrefix)], anyDeskPrefix) {
		input = strings.TrimSpace(input[len(anyDeskPrefix):])
	}

	switch {
	case anyDeskDigits.MatchString(input):
		return input, true
	case anyDeskGrouped.MatchString(input):
		id := strings.ReplaceAll(input, " ", "")
		if anyDeskDigits.MatchString(id) {
			return id, true
		}
	case anyDeskAlias.MatchString(input):
		return input, true
	}

	return "", false
}
