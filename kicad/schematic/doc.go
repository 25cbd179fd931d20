// Package schematic describes the contents of KiCad 7 .kicad_sch files.
//
// Records map one to one onto the s-expressions KiCad writes. The top-level
// record is Schematic, tag kicad_sch, file format version 20230121.
package schematic
