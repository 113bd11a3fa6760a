// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package launcher

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
