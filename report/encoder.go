package report

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFormatUnavailable is returned when no encoder is registered for the
// requested format. Callers must treat this as a soft failure, never a crash.
var ErrFormatUnavailable = errors.New("report: no encoder registered for format")

// Encoder serializes a report snapshot into one downloadable format.
// Implementations are stateless and safe for concurrent use.
type Encoder interface {
	// Encode renders the snapshot into the output format
	Encode(cfg Config, data *Data) ([]byte, error)
	// ContentType returns the MIME type for download headers
	ContentType() string
	// FileExtension returns the extension including the dot (e.g. ".csv")
	FileExtension() string
	// Name returns the human-readable encoder name
	Name() string
}

// Registry holds the registered encoders keyed by format
type Registry struct {
	mu       sync.RWMutex
	encoders map[Format]Encoder
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{encoders: make(map[Format]Encoder)}
}

// DefaultRegistry returns a registry with all built-in encoders registered
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormatCSV, NewCSVEncoder())
	r.Register(FormatDOCX, NewDOCXEncoder())
	r.Register(FormatPDF, NewPDFEncoder())
	return r
}

// Register registers an encoder for a format, replacing any previous one
func (r *Registry) Register(format Format, enc Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encoders[format] = enc
}

// Encoder returns the encoder for a format, or ErrFormatUnavailable
func (r *Registry) Encoder(format Format) (Encoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enc, ok := r.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatUnavailable, format)
	}
	return enc, nil
}

// Encode renders the snapshot with the encoder registered for cfg.Format
func (r *Registry) Encode(cfg Config, data *Data) ([]byte, string, error) {
	enc, err := r.Encoder(cfg.Format)
	if err != nil {
		return nil, "", err
	}
	payload, err := enc.Encode(cfg, data)
	if err != nil {
		return nil, "", fmt.Errorf("report: %s encoding failed: %w", enc.Name(), err)
	}
	return payload, enc.ContentType(), nil
}

// Formats returns the formats with a registered encoder
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]Format, 0, len(r.encoders))
	for f := range r.encoders {
		formats = append(formats, f)
	}
	return formats
}
