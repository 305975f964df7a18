// Package textutil provides text handling shared by the ALE engine and the
// exporters.
//
// The primary use cases are:
//   - Decoding uploaded ALE content (UTF-8 with optional BOM, falling back to
//     Windows-1252 for exports written by Windows workstations)
//   - Cleaning operator-supplied decorated names into uppercase tokens
//   - Sanitizing filenames derived from clip metadata
package textutil
