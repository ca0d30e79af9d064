package domain

// Symbol is an encoded QR matrix without its quiet zone.
type Symbol struct {
	Version int
	Level   Level
	// Modules is indexed [row][col]; true means dark.
	Modules [][]bool
}

// Size returns the number of modules per side.
func (s Symbol) Size() int {
	return len(s.Modules)
}

// Dark reports whether the module at (x, y) is dark. Coordinates outside the
// matrix are light, which is what the quiet zone needs.
func (s Symbol) Dark(x, y int) bool {
	if y < 0 || y >= len(s.Modules) {
		return false
	}
	row := s.Modules[y]
	if x < 0 || x >= len(row) {
		return false
	}
	return row[x]
}
