// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backoffice

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"

	"github.com/MKhiriev/service-launcher/internal/logger"
)

// ConfigRelPath is the client config location inside the AppData folder.
var ConfigRelPath = filepath.Join("config", "backclient.config.xml")

// ServerSettings is what gets written into backclient.config.xml.
type ServerSettings struct {
	Host     string
	Port     int
	Protocol string
	Login    string
}

// EditConfig points the BackOffice client config at the target server.
//
// ServerAddr, Protocol and Port under ServersList are overwritten when present;
// a missing child is only logged. Login is overwritten wherever it appears.
func EditConfig(path string, s ServerSettings, log *logger.Logger) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	servers := doc.FindElement("//ServersList")
	if servers == nil {
		return fmt.Errorf("%s: %w", path, ErrServersListNotFound)
	}

	values := []struct {
		tag, value string
	}{
		{"ServerAddr", s.Host},
		{"Protocol", s.Protocol},
		{"Port", strconv.Itoa(s.Port)},
	}
	for _, v := range values {
		el := servers.SelectElement(v.tag)
		if el == nil {
			log.Warn().Str("func", "EditConfig").Str("tag", v.tag).Msg("element not found under ServersList")
			continue
		}
		el.SetText(v.value)
	}

	if login := doc.FindElement("//Login"); login != nil {
		login.SetText(s.Login)
	} else {
		log.Warn().Str("func", "EditConfig").Msg("Login element not found")
	}

	if len(doc.Child) == 0 || !isXMLDecl(doc.Child[0]) {
		doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="utf-8"`))
	}

	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("func", "EditConfig").Str("path", path).Str("host", s.Host).Int("port", s.Port).
		Str("protocol", s.Protocol).Msg("backoffice config updated")
	return nil
}

func isXMLDecl(t etree.Token) bool {
	pi, ok := t.(*etree.ProcInst)
	return ok && pi.Target == "xml"
}
