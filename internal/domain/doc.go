// Package domain defines the icon tables, data shapes and contracts shared across
// the launcher pipeline. It contains plain types and interfaces only, plus the
// fixed size tables for each platform.
package domain
