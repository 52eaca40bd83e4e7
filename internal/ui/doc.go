// Package ui provides the shared primitives for composing the dashboard:
//
//   - Panel: a named region of a layout with a bounds function
//   - Layout: arranges panels and defines draw order
//   - Styles: the shared color palette and panel chrome styles
package ui
