package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryUnknownFormatIsSoftFailure(t *testing.T) {
	r := NewRegistry()

	_, err := r.Encoder(FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormatUnavailable)

	payload, contentType, err := r.Encode(demoConfig(FormatPDF), demoData(t))
	assert.ErrorIs(t, err, ErrFormatUnavailable)
	assert.Nil(t, payload)
	assert.Empty(t, contentType)
}

func TestDefaultRegistryCoversAllFormats(t *testing.T) {
	r := DefaultRegistry()
	for _, format := range []Format{FormatCSV, FormatDOCX, FormatPDF} {
		enc, err := r.Encoder(format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, enc.ContentType())
		assert.NotEmpty(t, enc.FileExtension())
	}
	assert.Len(t, r.Formats(), 3)
}

func TestRegistryEncodeReturnsEncoderContentType(t *testing.T) {
	r := DefaultRegistry()

	payload, contentType, err := r.Encode(demoConfig(FormatCSV), demoData(t))
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "text/csv; charset=utf-8", contentType)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(FormatCSV, NewCSVEncoder())
	r.Register(FormatCSV, NewCSVEncoder())
	assert.Len(t, r.Formats(), 1)
}

func TestEncodersProduceNonEmptyOutput(t *testing.T) {
	data := demoData(t)
	for _, format := range []Format{FormatCSV, FormatDOCX, FormatPDF} {
		t.Run(string(format), func(t *testing.T) {
			payload, _, err := DefaultRegistry().Encode(demoConfig(format), data)
			require.NoError(t, err)
			assert.NotEmpty(t, payload)
		})
	}
}

func TestDOCXOutputIsZipContainer(t *testing.T) {
	payload, err := NewDOCXEncoder().Encode(demoConfig(FormatDOCX), demoData(t))
	require.NoError(t, err)
	require.Greater(t, len(payload), 4)
	assert.Equal(t, []byte{'P', 'K', 3, 4}, payload[:4])
}

func TestPDFOutputHasMagicHeader(t *testing.T) {
	payload, err := NewPDFEncoder().Encode(demoConfig(FormatPDF), demoData(t))
	require.NoError(t, err)
	require.Greater(t, len(payload), 5)
	assert.Equal(t, "%PDF-", string(payload[:5]))
}
