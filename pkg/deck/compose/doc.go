// Package compose builds slide furniture out of the primitives in
// [github.com/matzehuels/stackdeck/pkg/deck].
//
// Every function takes the target slide, an explicit [theme.Theme] and the
// geometry to fill. Nothing here reads package-level state, so decks with
// different themes can be built side by side.
//
// # Composites
//
//   - [Card]: panel, title, separator and bulleted body, always four
//     instructions in that order
//   - [TitleBanner], [SectionDivider], [Cover]: page headers
//   - [FeatureTile], [Step], [MetricTile], [LayerBar], [Badge], [Callout]:
//     repeated tiles driven by content rows
//   - [Arrow]: a glyph connector between tiles
//
// Helpers such as [FeatureGrid] and [Flow] place a table of rows on a
// [grid.Grid], drawing arrows between neighbours where the layout calls for
// them.
//
// # Overflow
//
// Text boxes are sized by the caller. Body text that does not fit its box is
// neither truncated nor shrunk; the renderer lets it spill past the bottom
// edge. Content tables are expected to be sized by hand for their layout.
package compose
