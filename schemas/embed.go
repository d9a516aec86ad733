// Package schemas holds the JSON Schemas for resume input and analysis output.
package schemas

import _ "embed"

// Resume is the JSON Schema for ResumeDocument input files.
//
//go:embed resume.schema.json
var Resume []byte

// AnalysisResult is the JSON Schema for serialized analysis results.
//
//go:embed analysis_result.schema.json
var AnalysisResult []byte
