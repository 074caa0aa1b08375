// Package perms provides centralized file and directory permission constants
// for the files bruno-doc writes (generated documentation, config files, logs).
package perms

import "os"

const (
	// RegularFile permissions for generated documentation, config files and logs.
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for directories created to hold generated documentation.
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)
