// Package vast maps VAST 2.0 through 4.x documents to Go structs and back.
// The model keeps only what resolving and stitching wrapper chains needs;
// everything else passes through untouched or is ignored on input.
package vast

import "encoding/xml"

// SpecVersion identifies the VAST specification level a document declares.
type SpecVersion string

const (
	Version2       SpecVersion = "2.0"
	Version3       SpecVersion = "3.0"
	Version4       SpecVersion = "4.0"
	VersionUnknown SpecVersion = "unknown"
)

// Document is the root of a VAST response. A document with no Ads is the
// explicit "no ad" signal, which is valid VAST.
type Document struct {
	XMLName xml.Name `xml:"VAST"`
	Version string   `xml:"version,attr,omitempty"`
	Errors  []URI    `xml:"Error"`
	Ads     []Ad     `xml:"Ad"`
}

// SpecVersion normalizes the raw version attribute. Anything outside the
// versions this library understands maps to VersionUnknown.
func (d *Document) SpecVersion() SpecVersion {
	switch SpecVersion(d.Version) {
	case Version2, Version3, Version4:
		return SpecVersion(d.Version)
	default:
		return VersionUnknown
	}
}

// Ad is a tagged union: after a successful Parse exactly one of InLine or
// Wrapper is non-nil.
type Ad struct {
	ID            string   `xml:"id,attr,omitempty"`
	Sequence      int      `xml:"sequence,attr,omitempty"`
	ConditionalAd *bool    `xml:"conditionalAd,attr,omitempty"`
	InLine        *InLine  `xml:"InLine,omitempty"`
	Wrapper       *Wrapper `xml:"Wrapper,omitempty"`
}

// IsInLine reports whether the ad carries playable creative data and is
// therefore chain-terminal.
func (a *Ad) IsInLine() bool {
	return a != nil && a.InLine != nil
}

// IsWrapper reports whether the ad redirects to another VAST document.
func (a *Ad) IsWrapper() bool {
	return a != nil && a.Wrapper != nil
}

// URI is a tracking or redirect target. Serialized as CDATA, as ad servers
// routinely embed query strings with XML-hostile characters.
type URI struct {
	Value string `xml:",cdata"`
}

// Impression is a URI requested when the ad is displayed.
type Impression struct {
	ID  string `xml:"id,attr,omitempty"`
	URI string `xml:",cdata"`
}

// AdSystem names the server that produced the ad.
type AdSystem struct {
	Version string `xml:"version,attr,omitempty"`
	Name    string `xml:",chardata"`
}

// InLine contains the actual creative and tracking data.
type InLine struct {
	AdSystem    *AdSystem    `xml:"AdSystem"`
	AdTitle     string       `xml:"AdTitle"`
	Description string       `xml:"Description,omitempty"`
	Advertiser  string       `xml:"Advertiser,omitempty"`
	Survey      *URI         `xml:"Survey,omitempty"`
	Impressions []Impression `xml:"Impression"`
	Errors      []URI        `xml:"Error"`
	Pricing     *Pricing     `xml:"Pricing,omitempty"`
	Extensions  *Extensions  `xml:"Extensions,omitempty"`
	Creatives   *Creatives   `xml:"Creatives,omitempty"`
}

// Wrapper redirects to the next VAST document via VASTAdTagURI.
type Wrapper struct {
	FollowAdditionalWrappers *bool        `xml:"followAdditionalWrappers,attr,omitempty"`
	AllowMultipleAds         bool         `xml:"allowMultipleAds,attr,omitempty"`
	AdSystem                 *AdSystem    `xml:"AdSystem"`
	AdTagURI                 URI          `xml:"VASTAdTagURI"`
	Impressions              []Impression `xml:"Impression"`
	Errors                   []URI        `xml:"Error"`
	Extensions               *Extensions  `xml:"Extensions,omitempty"`
	Creatives                *Creatives   `xml:"Creatives,omitempty"`
}

// FollowsAdditional reports whether the chain may continue through further
// wrappers below this one. The VAST default is true.
func (w *Wrapper) FollowsAdditional() bool {
	return w.FollowAdditionalWrappers == nil || *w.FollowAdditionalWrappers
}

// Pricing carries the price of the ad (VAST 3.0+).
type Pricing struct {
	Model    string `xml:"model,attr"`
	Currency string `xml:"currency,attr"`
	Value    string `xml:",chardata"`
}

// Extensions holds publisher- or vendor-specific payload. The content of
// each Extension is preserved verbatim and never interpreted.
type Extensions struct {
	Extensions []Extension `xml:"Extension"`
}

// Extension is an opaque pass-through element.
type Extension struct {
	Type string `xml:"type,attr,omitempty"`
	Data string `xml:",innerxml"`
}

// Creatives groups the Creative elements of an ad.
type Creatives struct {
	Creative []Creative `xml:"Creative"`
}

// Creative is one playable unit. Internals are copied without interpreting
// playback semantics.
type Creative struct {
	ID           string        `xml:"id,attr,omitempty"`
	Sequence     int           `xml:"sequence,attr,omitempty"`
	AdID         string        `xml:"adId,attr,omitempty"`
	APIFramework string        `xml:"apiFramework,attr,omitempty"`
	Linear       *Linear       `xml:"Linear,omitempty"`
	CompanionAds *CompanionAds `xml:"CompanionAds,omitempty"`
	NonLinearAds *NonLinearAds `xml:"NonLinearAds,omitempty"`
}

// Linear is an in-stream video creative.
type Linear struct {
	Duration       string          `xml:"Duration,omitempty"`
	TrackingEvents *TrackingEvents `xml:"TrackingEvents,omitempty"`
	VideoClicks    *VideoClicks    `xml:"VideoClicks,omitempty"`
	MediaFiles     *MediaFiles     `xml:"MediaFiles,omitempty"`
}

// TrackingEvents groups Tracking elements.
type TrackingEvents struct {
	Tracking []Tracking `xml:"Tracking"`
}

// Tracking is a URI requested when the named playback milestone occurs.
// Event names are free-form per the VAST spec ("start", "complete", ...).
type Tracking struct {
	Event string `xml:"event,attr"`
	URI   string `xml:",cdata"`
}

// VideoClicks holds click-through and click-tracking targets.
type VideoClicks struct {
	ClickThrough  *URI  `xml:"ClickThrough,omitempty"`
	ClickTracking []URI `xml:"ClickTracking"`
	CustomClick   []URI `xml:"CustomClick"`
}

// MediaFiles groups MediaFile references.
type MediaFiles struct {
	MediaFile []MediaFile `xml:"MediaFile"`
}

// MediaFile references one encoding of the creative asset.
type MediaFile struct {
	Type     string `xml:"type,attr,omitempty"`
	Delivery string `xml:"delivery,attr,omitempty"`
	Width    int    `xml:"width,attr,omitempty"`
	Height   int    `xml:"height,attr,omitempty"`
	Codec    string `xml:"codec,attr,omitempty"`
	Bitrate  int    `xml:"bitrate,attr,omitempty"`
	URI      string `xml:",cdata"`
}

// CompanionAds groups Companion banners shown alongside the video.
type CompanionAds struct {
	Companion []Companion `xml:"Companion"`
}

// Companion is a banner creative. Resource kinds are kept as distinct
// fields so serialization reproduces the original element.
type Companion struct {
	ID             string          `xml:"id,attr,omitempty"`
	Width          int             `xml:"width,attr"`
	Height         int             `xml:"height,attr"`
	StaticResource *StaticResource `xml:"StaticResource,omitempty"`
	IFrameResource *URI            `xml:"IFrameResource,omitempty"`
	HTMLResource   *URI            `xml:"HTMLResource,omitempty"`
	ClickThrough   *URI            `xml:"CompanionClickThrough,omitempty"`
	TrackingEvents *TrackingEvents `xml:"TrackingEvents,omitempty"`
}

// StaticResource is an image or flash asset reference.
type StaticResource struct {
	CreativeType string `xml:"creativeType,attr,omitempty"`
	URI          string `xml:",cdata"`
}

// NonLinearAds groups overlay creatives.
type NonLinearAds struct {
	NonLinear []NonLinear `xml:"NonLinear"`
}

// NonLinear is an overlay creative rendered on top of the video.
type NonLinear struct {
	ID                  string          `xml:"id,attr,omitempty"`
	Width               int             `xml:"width,attr"`
	Height              int             `xml:"height,attr"`
	ExpandedWidth       int             `xml:"expandedWidth,attr,omitempty"`
	ExpandedHeight      int             `xml:"expandedHeight,attr,omitempty"`
	Scalable            *bool           `xml:"scalable,attr,omitempty"`
	MaintainAspectRatio *bool           `xml:"maintainAspectRatio,attr,omitempty"`
	StaticResource      *StaticResource `xml:"StaticResource,omitempty"`
	IFrameResource      *URI            `xml:"IFrameResource,omitempty"`
	HTMLResource        *URI            `xml:"HTMLResource,omitempty"`
	ClickThrough        *URI            `xml:"NonLinearClickThrough,omitempty"`
}
