// Package stitch flattens a resolved wrapper chain into one self-contained
// VAST document.
//
// Tracking data collected at every wrapper level is merged into the
// terminal InLine ad so a player needs only the stitched document to fire
// every pixel the chain demanded. Ordering is deterministic: entries from
// outer wrappers precede entries from inner ones, and the InLine's own
// entries come last.
package stitch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vastitch/vastitch/pkg/resolve"
	"github.com/vastitch/vastitch/pkg/vast"
)

// ErrNoInLine indicates a stitch was attempted on a chain that does not
// terminate in an InLine ad.
var ErrNoInLine = errors.New("chain does not terminate in an InLine ad")

// syntheticCreativeID marks the pass-through creative that collects
// wrapper tracking events with no correlatable InLine creative.
const syntheticCreativeID = "wrapper-tracking"

// linearPatch accumulates wrapper-level tracking destined for one Linear
// creative of the InLine.
type linearPatch struct {
	events        []vast.Tracking
	clickTracking []vast.URI
	customClick   []vast.URI
}

func (p *linearPatch) empty() bool {
	return len(p.events) == 0 && len(p.clickTracking) == 0 && len(p.customClick) == 0
}

// Stitch merges the chain into a single document whose first Ad is the
// terminal InLine carrying every wrapper's impressions, errors, tracking
// events and click tracking. The links are read only; the returned
// document is independently owned by the caller.
//
// The resolver guarantees a valid chain on success, but Stitch re-checks
// the preconditions since it may be called on its own.
func Stitch(links []resolve.Link) (*vast.Document, error) {
	if len(links) == 0 {
		return nil, fmt.Errorf("empty chain: %w", ErrNoInLine)
	}
	last := links[len(links)-1]
	terminal := last.Ad()
	if !terminal.IsInLine() {
		return nil, fmt.Errorf("%s: %w", last.Location, ErrNoInLine)
	}

	merged, err := vast.CloneAd(terminal)
	if err != nil {
		return nil, fmt.Errorf("copy terminal ad: %w", err)
	}
	inline := merged.InLine

	var impressions []vast.Impression
	var errPixels []vast.URI
	patches := make(map[int]*linearPatch)
	orphan := &linearPatch{}

	// Walk outermost wrapper to innermost; the terminal link is excluded.
	for _, link := range links[:len(links)-1] {
		ad := link.Ad()
		if !ad.IsWrapper() {
			continue
		}
		w := ad.Wrapper
		impressions = append(impressions, w.Impressions...)
		errPixels = append(errPixels, w.Errors...)

		if w.Creatives == nil {
			continue
		}
		for _, c := range w.Creatives.Creative {
			if c.Linear == nil {
				continue
			}
			p := orphan
			if idx := matchCreative(inline, c); idx >= 0 {
				if patches[idx] == nil {
					patches[idx] = &linearPatch{}
				}
				p = patches[idx]
			}
			if c.Linear.TrackingEvents != nil {
				p.events = append(p.events, c.Linear.TrackingEvents.Tracking...)
			}
			if vc := c.Linear.VideoClicks; vc != nil {
				p.clickTracking = append(p.clickTracking, vc.ClickTracking...)
				p.customClick = append(p.customClick, vc.CustomClick...)
			}
		}
	}

	inline.Impressions = append(impressions, inline.Impressions...)
	inline.Errors = append(errPixels, inline.Errors...)

	for idx, p := range patches {
		applyPatch(inline.Creatives.Creative[idx].Linear, p)
	}
	if !orphan.empty() {
		appendSynthetic(inline, orphan)
	}

	out := &vast.Document{
		Version: last.Doc.Version,
		Errors:  slices.Clone(last.Doc.Errors),
		Ads:     []vast.Ad{*merged},
	}

	// Sibling ads of the starting document pass through unresolved.
	first := links[0]
	for i := range first.Doc.Ads {
		if i == first.AdIndex {
			continue
		}
		sibling, err := vast.CloneAd(&first.Doc.Ads[i])
		if err != nil {
			return nil, fmt.Errorf("copy sibling ad: %w", err)
		}
		out.Ads = append(out.Ads, *sibling)
	}

	return out, nil
}

// matchCreative correlates a wrapper creative with an InLine Linear
// creative: by creative id when the wrapper carries one, otherwise the
// first Linear creative. Returns -1 when nothing correlates.
func matchCreative(inline *vast.InLine, c vast.Creative) int {
	if inline.Creatives == nil {
		return -1
	}
	if c.ID != "" {
		for i, ic := range inline.Creatives.Creative {
			if ic.ID == c.ID && ic.Linear != nil {
				return i
			}
		}
	}
	for i, ic := range inline.Creatives.Creative {
		if ic.Linear != nil {
			return i
		}
	}
	return -1
}

// applyPatch prepends wrapper tracking to a Linear creative, keeping the
// creative's own entries last.
func applyPatch(l *vast.Linear, p *linearPatch) {
	if len(p.events) > 0 {
		if l.TrackingEvents == nil {
			l.TrackingEvents = &vast.TrackingEvents{}
		}
		l.TrackingEvents.Tracking = append(slices.Clone(p.events), l.TrackingEvents.Tracking...)
	}
	if len(p.clickTracking) > 0 || len(p.customClick) > 0 {
		if l.VideoClicks == nil {
			l.VideoClicks = &vast.VideoClicks{}
		}
		l.VideoClicks.ClickTracking = append(slices.Clone(p.clickTracking), l.VideoClicks.ClickTracking...)
		l.VideoClicks.CustomClick = append(slices.Clone(p.customClick), l.VideoClicks.CustomClick...)
	}
}

// appendSynthetic adds the pass-through creative holding wrapper tracking
// that had no InLine creative to land in, so no tracking data is silently
// dropped.
func appendSynthetic(inline *vast.InLine, p *linearPatch) {
	syn := vast.Creative{
		ID:     syntheticCreativeID,
		Linear: &vast.Linear{},
	}
	if len(p.events) > 0 {
		syn.Linear.TrackingEvents = &vast.TrackingEvents{Tracking: slices.Clone(p.events)}
	}
	if len(p.clickTracking) > 0 || len(p.customClick) > 0 {
		syn.Linear.VideoClicks = &vast.VideoClicks{
			ClickTracking: slices.Clone(p.clickTracking),
			CustomClick:   slices.Clone(p.customClick),
		}
	}
	if inline.Creatives == nil {
		inline.Creatives = &vast.Creatives{}
	}
	inline.Creatives.Creative = append(inline.Creatives.Creative, syn)
}
