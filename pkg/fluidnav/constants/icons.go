package constants

// Icon font glyph (Material Design Icons) drawn on navigation buttons when
// the theme sets an icon font. The back chevron, sheet grabber and cover
// close control are SVGs and need no glyph.
const ArrowRight = "\U000F0054"
