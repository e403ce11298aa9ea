// Package reference renders citation instances into formatted reference
// strings.
//
// Rendering is literal substring substitution of field keys in the schema
// template. A value that happens to contain a later field's key is substituted
// again; callers that need stricter behavior can supply another Renderer.
//
// Rendered strings keep the template's <i>...</i> emphasis markers. Segments,
// PlainText and HTML convert them for display and clipboard targets.
package reference
