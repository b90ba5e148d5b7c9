// Package version carries the suite's release string.
package version

// Version is stamped into every utility's --version output.
const Version = "1.0.0"
