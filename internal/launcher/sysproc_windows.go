// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build windows

package launcher

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysProcAttr suppresses the console window a GUI parent would otherwise
// open for the child.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: windows.CREATE_NO_WINDOW}
}
