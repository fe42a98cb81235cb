package export

// VertexRow holds one sheet mesh vertex with its field sample.
type VertexRow struct {
	Index int     `csv:"index"`
	T1    float64 `csv:"t1"` // Sheet phase angles
	T2    float64 `csv:"t2"`
	T3    float64 `csv:"t3"`

	T1W float64 `csv:"t1_wrapped"` // Phase angles wrapped into [-pi, pi)
	T2W float64 `csv:"t2_wrapped"`

	X float64 `csv:"x"` // Sheet position in rhombus units
	Y float64 `csv:"y"`

	Rate float64 `csv:"rate"` // Grid-cell firing rate at the sampling position
}

// TriangleRow holds one mesh face as indices into vertices.csv.
type TriangleRow struct {
	A int `csv:"a"`
	B int `csv:"b"`
	C int `csv:"c"`
}

// CornerRow holds one corner of the unit hexagon tile.
type CornerRow struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// FrameRow holds one morphed vertex position for an animation frame.
type FrameRow struct {
	Index int     `csv:"index"`
	P     float64 `csv:"p"` // Morph progress the frame was rendered at
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}
