// Package commands defines the ixtags CLI.
//
// Commands
//
//   - url                 Print the CDN URL for an image
//   - srcset              Print the density srcset
//   - img                 Render an <img> tag
//   - responsive          Render an <img> with srcset
//   - picture             Render a <picture> with a density <source>
//   - lazy                Render the lazy-load <img> variant
//   - responsive-picture  Render a <picture> with breakpoint <source>s
//   - init                Interactively write a configuration file
//
// Render commands take the image path followed by key=value attributes:
//
//	ixtags img hero.jpg w=640 auto=format alt="Hero image"
//
// Configuration is read from --config (YAML or JSON) when given, then
// IMGIX_* environment variables, then flags.
package commands
