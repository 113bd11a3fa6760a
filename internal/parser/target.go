// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/service-launcher/models"
)

var (
	schemePrefix = regexp.MustCompile(`(?i)^(https?|ftps?)://`)
	userInfo     = regexp.MustCompile(`^[^@/]+@`)
	portSuffix   = regexp.MustCompile(`:(\d+)(?:/.*)?$`)
	ipv4Shape    = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	hostName     = regexp.MustCompile(`^[\pL\pN]([\pL\pN._-]*[\pL\pN])?$`)
)

// ParseTarget extracts a server address from a URL or a host[:port] string.
//
// The scheme and user info are dropped. An explicit port in 1..65535 is
// honoured; without one the port is 443. An out of range port stays part of
// the host and fails host validation. The scheme is derived from the
// final port: https for 443, http otherwise, because back-office servers
// behind TLS always listen on 443.
func ParseTarget(raw string) (models.Target, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return models.Target{}, ErrEmptyInput
	}

	rest := schemePrefix.ReplaceAllString(input, "")
	rest = userInfo.ReplaceAllString(rest, "")

	port := models.DefaultPort
	hostPart := rest
	if m := portSuffix.FindStringSubmatchIndex(rest); m != nil {
		if p, err := strconv.Atoi(rest[m[2]:m[3]]); err == nil && p >= 1 && p <= 65535 {
			port = p
			hostPart = rest[:m[0]]
		}
	}

	host, _, _ := strings.Cut(hostPart, "/")
	host = strings.TrimSpace(host)
	if host == "" {
		return models.Target{}, &ParseError{Input: input, Reason: "no host"}
	}
	if !hostName.MatchString(host) {
		return models.Target{}, &ParseError{Input: input, Reason: "invalid host " + strconv.Quote(host)}
	}

	scheme := models.SchemeHTTP
	if port == models.DefaultPort {
		scheme = models.SchemeHTTPS
	}

	return models.Target{
		Host:        host,
		Port:        port,
		Scheme:      scheme,
		IsIPAddress: isIPv4(host),
	}, nil
}

func isIPv4(host string) bool {
	if !ipv4Shape.MatchString(host) {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.To4() != nil
}
