// Package common holds the records shared by KiCad schematic and board
// files: strokes, point lists, paper sizes, title blocks and text effects.
package common
