// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

// MaxPasteLength is the number of runes kept from pasted clipboard text.
const MaxPasteLength = 100

type inputService struct {
	classifier *parser.Classifier
	clipboard  ClipboardReader
	logger     *logger.Logger
}

// NewInputService returns an InputService using the LiteManager id mask of
// the classifier.
func NewInputService(classifier *parser.Classifier, clipboard ClipboardReader, logger *logger.Logger) InputService {
	return &inputService{classifier: classifier, clipboard: clipboard, logger: logger}
}

func (s *inputService) Classify(raw string) (models.ConnectionRequest, error) {
	req, err := s.classifier.Classify(raw)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*inputService.Classify").Msg("input not recognized")
		return req, err
	}
	s.logger.Debug().Str("func", "*inputService.Classify").Stringer("kind", req.Kind).Str("id", req.ID).Msg("input classified")
	return req, nil
}

func (s *inputService) Paste() (string, error) {
	text, err := s.clipboard.ReadText()
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*inputService.Paste").Msg("clipboard read failed")
		return "", fmt.Errorf("%w: %w", ErrClipboardEmpty, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrClipboardEmpty
	}
	return truncateRunes(text, MaxPasteLength), nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
