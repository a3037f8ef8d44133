// Package vastitch resolves VAST wrapper chains and stitches them into a
// single playable document.
//
// It connects the core resolution logic with the content-fetching
// adapters using a hexagonal layout: the resolver depends only on the
// fetch.Fetcher capability, so local files and remote ad tags are
// interchangeable.
//
// Features:
//
//   - VAST 2.0/3.0/4.0 parsing into a typed model, with opaque
//     pass-through of creative internals and extensions.
//   - Wrapper-chain resolution with cycle detection and a configurable
//     depth bound, as an explicit loop rather than recursion.
//   - Stitching: impressions, error pixels, tracking events and click
//     tracking from every wrapper level merged into the terminal InLine,
//     outer levels first.
//   - Injectable fetching: file paths, file:// URLs and http(s) tags out
//     of the box; bring your own fetcher for anything else.
//
// Usage:
//
//	client := vastitch.New(
//		vastitch.WithMaxDepth(5),
//		vastitch.WithLogger(logger),
//	)
//
//	doc, err := client.Stitch(ctx, "https://ads.example.com/tag.xml")
package vastitch
