// Package internal contains the SDL side of fluidnav: window and renderer
// setup, fonts, cached text and icon textures, input mapping, theming and
// logging. Types and functions in this package are not part of the public API.
package internal
