package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a mesh file, choosing the parser by extension.
// An empty path returns the unit cube.
func Load(path string) (*Mesh, error) {
	if path == "" {
		return UnitCube(), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		m, err := ParseOBJ(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse OBJ file: %w", err)
		}
		return m, nil
	case ".stl":
		m, err := ParseSTL(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .obj or .stl)", ext)
	}
}
