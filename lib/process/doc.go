// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the binary entrypoint helpers and the
// control-transfer primitive used by cmdbundle.
//
//   - [Exec] replaces the current process image with another
//     executable. On unix this is execve(2): the PID, inherited file
//     descriptors, process group and signal dispositions carry over and
//     no wrapper remains to translate the exit status. Platforms without
//     execve get a spawn-and-wait substitute that exits with the child's
//     status; the parent PID is not reused there.
//   - [Resolve] maps a bare executable name through PATH, the same way a
//     shell would before exec.
//   - [ExecError] reports a failed transfer and classifies it into the
//     conventional shell exit codes 126 and 127.
//   - [Fatal] and [ExitCode] centralize the final error report in main().
package process
