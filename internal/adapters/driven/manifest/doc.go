// Package manifest provides ManifestReader implementations.
//
// Adapters:
//   - SpreadsheetReader: .xlsx / .xlsm workbooks via excelize (first sheet)
//   - CSVReader: comma-separated manifests
//   - Reader: picks one of the above by file extension
//
// Both formats use the same header row: "File name", "start frame",
// "stop frame", "technique", "hand". Header matching ignores case and
// surrounding whitespace; extra columns are ignored.
package manifest
