// Package render turns a computed axis layout into drawable artifacts.
//
// Two sinks are provided: RenderSVG writes a standalone SVG document and
// RenderPNG rasterizes the same scene. Both consume an [axis.Result]
// as-is; they never re-run layout decisions, so a degraded result simply
// draws gridlines without text.
package render
