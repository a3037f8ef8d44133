package vast

import "encoding/xml"

// Marshal serializes the document back to VAST XML, prefixed with the XML
// declaration. Indentation is presentation only: an indented document
// parses back to the same model.
func (d *Document) Marshal(indent bool) ([]byte, error) {
	var body []byte
	var err error
	if indent {
		body, err = xml.MarshalIndent(d, "", "  ")
	} else {
		body, err = xml.Marshal(d)
	}
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Clone returns an independently owned deep copy of the document.
// Serialization round-tripping is used so opaque extension payload is
// copied byte for byte.
func (d *Document) Clone() (*Document, error) {
	data, err := xml.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := xml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloneAd deep-copies a single ad, including the opaque creative payload.
func CloneAd(a *Ad) (*Ad, error) {
	data, err := xml.Marshal(a)
	if err != nil {
		return nil, err
	}
	var out Ad
	if err := xml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuildNoAd returns the explicit empty document that signals "no ad".
// An empty version defaults to 3.0.
func BuildNoAd(version string) *Document {
	if version == "" {
		version = string(Version3)
	}
	return &Document{Version: version}
}
