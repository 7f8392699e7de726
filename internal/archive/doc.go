// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive stores snapshot trees as CPIO archives in the SVR4 "newc"
// format, the format the Linux kernel uses for initramfs archives.
package archive
