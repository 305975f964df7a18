// Package ale parses Avid Log Exchange clip logs and turns every data line into
// a validated, enriched Record.
//
// Processing is two-phase: the Column and Data markers are located first, then
// the header line is mapped to the required field positions and each data line
// is built into a Record. Structural problems (missing section, missing
// required column) become GlobalErrors and stop row processing. Naming and path
// convention violations are collected per Record and joined into its Error
// string; failing records sort ahead of clean ones.
//
// Deployment-specific details (episode tag prefix, decorated-name column
// semantics, storage path templates, frame rate) live in Convention so a single
// binary can serve either historical deployment without merging their rules.
//
// A Processor is cheap and owns no shared state. Use one per document.
package ale
