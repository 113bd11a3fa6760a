// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build windows

package installer

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const defaultTranslation = "040904b0"

type fileVersionInspector struct{}

// NewVendorInspector reads CompanyName from the version resource.
func NewVendorInspector() VendorInspector {
	return fileVersionInspector{}
}

func (fileVersionInspector) CompanyName(path string) (string, bool) {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil || size == 0 {
		return "", false
	}

	buf := make([]byte, size)
	block := unsafe.Pointer(&buf[0])
	if err = windows.GetFileVersionInfo(path, 0, size, block); err != nil {
		return "", false
	}

	translation := defaultTranslation
	var trPtr unsafe.Pointer
	var n uint32
	if err = windows.VerQueryValue(block, `\VarFileInfo\Translation`, unsafe.Pointer(&trPtr), &n); err == nil && n >= 4 {
		tr := (*[2]uint16)(trPtr)
		translation = fmt.Sprintf("%04x%04x", tr[0], tr[1])
	}

	var namePtr unsafe.Pointer
	subBlock := `\StringFileInfo\` + translation + `\CompanyName`
	if err = windows.VerQueryValue(block, subBlock, unsafe.Pointer(&namePtr), &n); err != nil || n == 0 {
		return "", false
	}

	name := strings.TrimSpace(windows.UTF16PtrToString((*uint16)(namePtr)))
	return name, name != ""
}
