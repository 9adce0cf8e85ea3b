package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// xmlDocument mirrors the report layout: one CompressionResults root with one
// Result child per algorithm, fields as sub-elements.
type xmlDocument struct {
	XMLName xml.Name             `xml:"CompressionResults"`
	Results []types.ScoredResult `xml:"Result"`
}

type xmlExporter struct{}

func (e *xmlExporter) Export(rs *types.ResultSet, w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(xmlDocument{Results: rs.Results}); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}

	// Trailing newline after the closing root element.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

// ReadXML parses an XML report back into its results.
func ReadXML(r io.Reader) ([]types.ScoredResult, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return doc.Results, nil
}
