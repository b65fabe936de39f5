// Package routefile ingests the text wire format that queries arrive in and
// materializes the dual-weight graph the engine runs over.
//
// Format, one record per line, fields separated by whitespace:
//
//	<start> <end> <metric>        header: metric 1=distance, 2=time, 3=both
//	<source> <target> <d> <t>     edge records, one directed arc each
//
// Blank lines and lines starting with '#' are skipped. An edge record
// creates only the source→target arc, never the reverse; parallel records
// for the same pair accumulate in file order, which becomes adjacency order.
//
// Progress reporting: long files can be observed via WithProgress, which
// invokes a callback periodically with the number of edges loaded so far.
// Parsing stays fully synchronous; the hook is for display only.
//
// Errors are sentinels wrapped with the offending line number:
// ErrEmptyInput, ErrBadHeader, ErrBadMetricCode, ErrBadEdgeRecord.
package routefile
