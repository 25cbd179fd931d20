package marshal

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies how a field value is laid out in the tree.
type ShapeEnum int

const (
	ShapeUnknown    ShapeEnum = iota
	ShapeScalar               // one atom
	ShapeTuple                // fixed number of atoms, [N]T
	ShapeSequence             // any number of atoms, []T
	ShapeRecord               // nested record
	ShapeRecordList           // repeated record, []R
	ShapeUnion                // interface with registered members

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)
