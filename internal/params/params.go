// Package params holds the search engine's parameter vector: the bundle
// of dimensions, transformations, symmetries, and pruning limits threaded
// through the engine, cell graph, and dump format as a single struct.
package params

import "fmt"

// Params is the full parameter vector, in the exact order the dump file
// format pins down, so that field order here stays the serialization
// contract even as the in-memory layout is free to change.
type Params struct {
	RowMax      int
	ColMax      int
	GenMax      int
	RowTrans    int
	ColTrans    int
	RowSym      int // 0 = off, else column where the mirror fold starts
	ColSym      int
	PointSym    bool
	FwdSym      bool
	BwdSym      bool
	FlipRows    int // 0 = off, else column where the flip fold starts
	FlipCols    int
	FlipQuads   bool
	Parent      bool // search for ancestors only
	AllObjects  bool // report sub-period objects too
	NearCols    int
	MaxCount    int
	UseRow      int
	UseCol      int
	ColCells    int
	ColWidth    int
	Follow      bool
	OrderWide   bool
	OrderGens   bool
	OrderMiddle bool
	FollowGens  bool
}

// Dimension limits on row, column, generation, and translation magnitude.
const (
	MaxRows  = 49
	MaxCols  = 132
	MaxGens  = 8
	MaxTrans = 4
)

// Default returns the parameter vector for an unconstrained 3x3x2 search,
// the smallest grid worth running a search over.
func Default() Params {
	return Params{RowMax: 3, ColMax: 3, GenMax: 2}
}

// Validate checks the dimension and transformation fields against the
// hard limits above, and the square-grid requirement of the diagonal
// symmetries and the quadrant flip. The other symmetry and pruning
// fields are not range-checked against RowMax/ColMax.
func (p Params) Validate() error {
	if p.RowMax <= 0 || p.RowMax > MaxRows {
		return fmt.Errorf("params: row count %d out of range (1..%d)", p.RowMax, MaxRows)
	}
	if p.ColMax <= 0 || p.ColMax > MaxCols {
		return fmt.Errorf("params: column count %d out of range (1..%d)", p.ColMax, MaxCols)
	}
	if p.GenMax <= 0 || p.GenMax > MaxGens {
		return fmt.Errorf("params: generation count %d out of range (1..%d)", p.GenMax, MaxGens)
	}
	if p.RowTrans < -MaxTrans || p.RowTrans > MaxTrans {
		return fmt.Errorf("params: row translation %d out of range (-%d..%d)", p.RowTrans, MaxTrans, MaxTrans)
	}
	if p.ColTrans < -MaxTrans || p.ColTrans > MaxTrans {
		return fmt.Errorf("params: column translation %d out of range (-%d..%d)", p.ColTrans, MaxTrans, MaxTrans)
	}
	if p.FwdSym && p.RowMax != p.ColMax {
		return fmt.Errorf("params: forward-diagonal symmetry requires a square rectangle")
	}
	if p.BwdSym && p.RowMax != p.ColMax {
		return fmt.Errorf("params: backward-diagonal symmetry requires a square rectangle")
	}
	if p.FlipQuads && p.RowMax != p.ColMax {
		return fmt.Errorf("params: quadrant flip requires a square rectangle")
	}
	return nil
}

// HasTransform reports whether generation G-1's future needs remapping
// instead of a plain cyclic wrap back to generation 0.
func (p Params) HasTransform() bool {
	return p.RowTrans != 0 || p.ColTrans != 0 || p.FlipRows != 0 ||
		p.FlipCols != 0 || p.FlipQuads
}

// HasSymmetry reports whether any spatial symmetry fold is configured.
func (p Params) HasSymmetry() bool {
	return p.RowSym != 0 || p.ColSym != 0 || p.PointSym || p.FwdSym || p.BwdSym
}

// Fields lists the parameter vector in dump-file order, the contract the
// dump writer and loader both walk so that adding a field later only
// means appending here.
var Fields = []string{
	"curStatus", "rowMax", "colMax", "genMax", "rowTrans", "colTrans",
	"rowSym", "colSym", "pointSym", "fwdSym", "bwdSym",
	"flipRows", "flipCols", "flipQuads", "parent", "allObjects",
	"nearCols", "maxCount", "useRow", "useCol", "colCells", "colWidth",
	"follow", "orderWide", "orderGens", "orderMiddle", "followGens",
}
