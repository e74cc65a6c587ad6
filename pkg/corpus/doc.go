// Package corpus reads training text one sentence at a time, from a stream,
// a file, or the rows of a SQL query.
package corpus
