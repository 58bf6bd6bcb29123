// Package params models the attribute bags handed to image tags by a template
// host. Values arrive as strings or numbers; the helpers here normalise them
// into the string form the CDN expects and expose numeric views for the few
// parameters the tags need to compute with (dimensions, focal points, device
// pixel ratios).
package params
