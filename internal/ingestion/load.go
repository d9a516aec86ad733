package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/types"
)

// Options controls how a resume is loaded.
type Options struct {
	// StrictSchema turns schema findings into errors. Otherwise they are logged and recorded
	// in Metadata.Warnings.
	StrictSchema bool
	// SkipClean keeps free-text fields exactly as they appear in the file.
	SkipClean bool
	Logger    *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// LoadResume reads, validates and cleans the resume JSON at path.
func LoadResume(path string, opts Options) (*types.ResumeDocument, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, meta, err := parse(data, path, opts)
	if err != nil {
		return nil, nil, err
	}
	return doc, meta, nil
}

// ParseResume decodes, validates and cleans resume JSON held in memory.
func ParseResume(data []byte, opts Options) (*types.ResumeDocument, *Metadata, error) {
	return parse(data, "", opts)
}

func parse(data []byte, source string, opts Options) (*types.ResumeDocument, *Metadata, error) {
	log := opts.logger()
	meta := NewMetadata(data, source)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, &LoadError{Path: source, Message: "file is empty"}
	}

	if err := schemas.ValidateResume(data); err != nil {
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) || opts.StrictSchema {
			return nil, nil, &LoadError{Path: source, Message: "schema validation failed", Cause: err}
		}
		for _, fe := range validationErr.Errors {
			meta.Warnings = append(meta.Warnings, fe.Field+": "+fe.Message)
		}
		log.Warn("Resume does not match schema",
			zap.String("source", source),
			zap.Int("findings", len(validationErr.Errors)),
		)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &LoadError{Path: source, Message: "invalid JSON", Cause: err}
	}

	if !opts.SkipClean {
		cleaned, err := CleanDocument(doc)
		if err != nil {
			log.Warn("Kept raw text for a field with unparseable markup",
				zap.String("source", source),
				zap.Error(err),
			)
		}
		doc = cleaned
	}

	log.Debug("Loaded resume",
		zap.String("source", source),
		zap.String("hash", meta.Hash),
		zap.Int("warnings", len(meta.Warnings)),
	)
	return &doc, meta, nil
}
