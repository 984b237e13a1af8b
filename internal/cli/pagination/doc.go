// Package pagination implements the --sort, --limit/--offset and
// --page/--page-size flags shared by list-producing commands such as sweep.
package pagination
