// Package pcb describes the contents of KiCad 7 .kicad_pcb files.
//
// The top-level record is Board, tag kicad_pcb, file format version
// 20221018. The board layer table is special: its entries are untagged
// lists such as (0 "F.Cu" signal), recognised by IsLayerDefinition.
package pcb
