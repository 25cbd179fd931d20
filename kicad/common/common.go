package common

import (
	"github.com/google/uuid"
)

// UUID identifies an item. KiCad 7 writes it unquoted.
type UUID string

// NewUUID returns a random version 4 UUID.
func NewUUID() UUID {
	return UUID(uuid.NewString())
}

// Color is red, green, blue and alpha. The channels are integers 0..255,
// alpha is 0..1.
type Color [4]float64

type StrokeType string

const (
	StrokeDefault    StrokeType = "default"
	StrokeDash       StrokeType = "dash"
	StrokeDashDot    StrokeType = "dash_dot"
	StrokeDashDotDot StrokeType = "dash_dot_dot"
	StrokeDot        StrokeType = "dot"
	StrokeSolid      StrokeType = "solid"
)

func (StrokeType) Values() []string {
	return []string{"default", "dash", "dash_dot", "dash_dot_dot", "dot", "solid"}
}

type Stroke struct {
	Width float64    `sexp:"width"`
	Type  StrokeType `sexp:"type"`
	Color *Color     `sexp:"color"`
}

func (s *Stroke) SetDefaults() {
	s.Type = StrokeDefault
}

// XY is one point of a point list.
type XY struct {
	X float64 `sexp:"x,positional"`
	Y float64 `sexp:"y,positional"`
}

// PolygonArc is an arc segment inside a point list.
type PolygonArc struct {
	Start [2]float64 `sexp:"start"`
	Mid   [2]float64 `sexp:"mid"`
	End   [2]float64 `sexp:"end"`
}

func (PolygonArc) SexpTag() string { return "arc" }

// Pts is a point list. Points and arcs are kept in separate sequences, their
// relative order is not preserved.
type Pts struct {
	XY  []XY         `sexp:"xy"`
	Arc []PolygonArc `sexp:"arc"`
}

// Image is an embedded bitmap, data holds base64 chunks of the PNG.
type Image struct {
	At    [2]float64 `sexp:"at"`
	Scale *float64   `sexp:"scale"`
	Layer *string    `sexp:"layer,quote"`
	UUID  *UUID      `sexp:"uuid"`
	Data  []string   `sexp:"data"`
}

type TitleBlockComment struct {
	Number int    `sexp:"number,positional"`
	Text   string `sexp:"text,positional,quote"`
}

func (TitleBlockComment) SexpTag() string { return "comment" }

func (c *TitleBlockComment) SetDefaults() {
	c.Number = 1
}

type TitleBlock struct {
	Title   string              `sexp:"title,quote,omitdefault"`
	Date    string              `sexp:"date,quote,omitdefault"`
	Rev     string              `sexp:"rev,quote,omitdefault"`
	Company string              `sexp:"company,quote,omitdefault"`
	Comment []TitleBlockComment `sexp:"comment"`
}
