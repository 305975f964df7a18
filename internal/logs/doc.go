// Package logs reads the alecheck log file for the logs command: the last N
// lines, then optionally new lines as they are appended.
package logs
