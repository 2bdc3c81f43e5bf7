// Package render is the renderer collaborator contract.
//
// Widgets that paint implement [Preparer]: given a frame [Context] they
// return the [Drawable] values for their current state. [Frame] walks a
// widget tree in paint order, clears dirty flags and collects drawables;
// a [Pass] backend then executes them. [RasterPass] draws into an
// *image.RGBA using golang.org/x/image and [Recorder] keeps a list of
// operations for inspection.
package render
