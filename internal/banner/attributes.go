package banner

import (
	"io"

	"github.com/oshokin/showversion/internal/domain/buildinfo"
)

// Attribute is a named piece of product metadata, in the spirit of
// assembly attributes attached to a binary.
type Attribute struct {
	// Key is the attribute name.
	Key string
	// Value is the attribute value, possibly empty.
	Value string
}

// Attributes returns the product attributes derived from the metadata.
func Attributes(md buildinfo.Metadata) []Attribute {
	configuration := ""
	if md.Debug {
		configuration = "debug"
	}

	return []Attribute{
		{Key: "Title", Value: md.AppName},
		{Key: "Product", Value: md.AppName},
		{Key: "Company", Value: Author},
		{Key: "Copyright", Value: Copyright(md.Year)},
		{Key: "Configuration", Value: configuration},
		{Key: "InformationalVersion", Value: md.Version},
	}
}

// WriteAttributes writes one "key: value" line per attribute.
func WriteAttributes(w io.Writer, attrs []Attribute) error {
	for _, attr := range attrs {
		if _, err := io.WriteString(w, attr.Key+": "+attr.Value+"\n"); err != nil {
			return err
		}
	}

	return nil
}
