// Package ixtags turns template tag attributes into imgix image URLs and
// markup.
//
// A tag call supplies a path plus a flat set of attributes. Attributes on the
// HTML allow-list (alt, class, width, ...) and any data-* or aria-* attribute
// are written onto the element; everything else is treated as an image
// processing parameter and encoded into the CDN URL, which is signed when a
// secure URL token is configured.
//
// Quick start with html/template:
//
//	t, err := ixtags.New(ixtags.Config{Source: "demo.imgix.net", UseHTTPS: true})
//	if err != nil { ... }
//	tmpl := template.New("page").Funcs(ixtags.FuncMap(t))
//
//	{{ imgix_responsive_image_tag "hero.jpg" "w" 640 "alt" "Hero" }}
//
// pongo2 hosts can call RegisterPongo2 to expose the same helpers as globals.
package ixtags
