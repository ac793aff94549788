package connectivity

import "errors"

// ErrShapeMismatch indicates a vertex index outside the CellSpace a Guard
// was built for. Guard.Disconnects does not return it; it does not check
// the index.
var ErrShapeMismatch = errors.New("connectivity: vertex index out of range for this lattice")
