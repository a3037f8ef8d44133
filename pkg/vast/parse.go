package vast

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	// ErrMalformedXML indicates the input is not well-formed XML.
	ErrMalformedXML = errors.New("malformed XML")

	// ErrInvalidVAST indicates well-formed XML that is missing required
	// VAST structure (wrong root, Wrapper without VASTAdTagURI, ...).
	ErrInvalidVAST = errors.New("invalid VAST document")
)

// Parse decodes VAST XML into a Document.
//
// Markup errors surface as ErrMalformedXML; structural violations surface
// as ErrInvalidVAST. Unknown elements at the Ad and root level are ignored
// to tolerate minor spec deviations; extension content is preserved as
// opaque payload.
func Parse(data []byte) (*Document, error) {
	if !bytes.Contains(data, []byte("<VAST")) {
		return nil, fmt.Errorf("%w: no VAST root element", ErrInvalidVAST)
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidVAST, err)
	}

	doc.normalize()
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// validate checks the structural invariants the model relies on: every Ad
// is exactly one of InLine or Wrapper, and every Wrapper names the next
// document.
func (d *Document) validate() error {
	for i := range d.Ads {
		ad := &d.Ads[i]
		switch {
		case ad.InLine == nil && ad.Wrapper == nil:
			return fmt.Errorf("%w: Ad %s has neither InLine nor Wrapper", ErrInvalidVAST, adLabel(ad, i))
		case ad.InLine != nil && ad.Wrapper != nil:
			return fmt.Errorf("%w: Ad %s has both InLine and Wrapper", ErrInvalidVAST, adLabel(ad, i))
		case ad.Wrapper != nil && ad.Wrapper.AdTagURI.Value == "":
			return fmt.Errorf("%w: Wrapper in Ad %s has no VASTAdTagURI", ErrInvalidVAST, adLabel(ad, i))
		}
	}
	return nil
}

func adLabel(ad *Ad, index int) string {
	if ad.ID != "" {
		return fmt.Sprintf("%q", ad.ID)
	}
	return fmt.Sprintf("#%d", index)
}

// normalize strips the indentation whitespace that pretty-printed sources
// leave around CDATA payloads, so URIs compare and serialize cleanly.
func (d *Document) normalize() {
	for i := range d.Errors {
		d.Errors[i].Value = strings.TrimSpace(d.Errors[i].Value)
	}
	for i := range d.Ads {
		ad := &d.Ads[i]
		if ad.InLine != nil {
			normalizeURIs(ad.InLine.Survey)
			normalizeImpressions(ad.InLine.Impressions)
			normalizeURISlice(ad.InLine.Errors)
			normalizeCreatives(ad.InLine.Creatives)
			ad.InLine.AdTitle = strings.TrimSpace(ad.InLine.AdTitle)
			ad.InLine.Description = strings.TrimSpace(ad.InLine.Description)
			ad.InLine.Advertiser = strings.TrimSpace(ad.InLine.Advertiser)
			if ad.InLine.AdSystem != nil {
				ad.InLine.AdSystem.Name = strings.TrimSpace(ad.InLine.AdSystem.Name)
			}
		}
		if ad.Wrapper != nil {
			ad.Wrapper.AdTagURI.Value = strings.TrimSpace(ad.Wrapper.AdTagURI.Value)
			normalizeImpressions(ad.Wrapper.Impressions)
			normalizeURISlice(ad.Wrapper.Errors)
			normalizeCreatives(ad.Wrapper.Creatives)
			if ad.Wrapper.AdSystem != nil {
				ad.Wrapper.AdSystem.Name = strings.TrimSpace(ad.Wrapper.AdSystem.Name)
			}
		}
	}
}

func normalizeURIs(uris ...*URI) {
	for _, u := range uris {
		if u != nil {
			u.Value = strings.TrimSpace(u.Value)
		}
	}
}

func normalizeURISlice(uris []URI) {
	for i := range uris {
		uris[i].Value = strings.TrimSpace(uris[i].Value)
	}
}

func normalizeImpressions(imps []Impression) {
	for i := range imps {
		imps[i].URI = strings.TrimSpace(imps[i].URI)
	}
}

func normalizeCreatives(cs *Creatives) {
	if cs == nil {
		return
	}
	for i := range cs.Creative {
		c := &cs.Creative[i]
		if c.Linear != nil {
			c.Linear.Duration = strings.TrimSpace(c.Linear.Duration)
			normalizeTracking(c.Linear.TrackingEvents)
			if vc := c.Linear.VideoClicks; vc != nil {
				normalizeURIs(vc.ClickThrough)
				normalizeURISlice(vc.ClickTracking)
				normalizeURISlice(vc.CustomClick)
			}
			if mf := c.Linear.MediaFiles; mf != nil {
				for i := range mf.MediaFile {
					mf.MediaFile[i].URI = strings.TrimSpace(mf.MediaFile[i].URI)
				}
			}
		}
		if c.CompanionAds != nil {
			for i := range c.CompanionAds.Companion {
				comp := &c.CompanionAds.Companion[i]
				normalizeURIs(comp.IFrameResource, comp.HTMLResource, comp.ClickThrough)
				if comp.StaticResource != nil {
					comp.StaticResource.URI = strings.TrimSpace(comp.StaticResource.URI)
				}
				normalizeTracking(comp.TrackingEvents)
			}
		}
		if c.NonLinearAds != nil {
			for i := range c.NonLinearAds.NonLinear {
				nl := &c.NonLinearAds.NonLinear[i]
				normalizeURIs(nl.IFrameResource, nl.HTMLResource, nl.ClickThrough)
				if nl.StaticResource != nil {
					nl.StaticResource.URI = strings.TrimSpace(nl.StaticResource.URI)
				}
			}
		}
	}
}

func normalizeTracking(te *TrackingEvents) {
	if te == nil {
		return
	}
	for i := range te.Tracking {
		te.Tracking[i].URI = strings.TrimSpace(te.Tracking[i].URI)
	}
}
