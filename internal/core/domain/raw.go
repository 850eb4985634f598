package domain

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before HTML normalisation.
type RawDocument struct {
	// URI is the original location (file path or URL).
	URI string

	// MIMEType is the content type, including any charset parameter
	// (e.g., "text/html; charset=windows-1252").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
