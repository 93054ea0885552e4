package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

var (
	// ErrMalformedNumber is returned when a vertex or face token is not a number
	ErrMalformedNumber = errors.New("malformed number")
	// ErrVertexArity is returned for a vertex line with fewer than 3 coordinates
	ErrVertexArity = errors.New("vertex needs 3 coordinates")
	// ErrFaceArity is returned for a face line with fewer than 3 indices
	ErrFaceArity = errors.New("face needs at least 3 indices")
	// ErrIndexOutOfRange is returned when a face refers to a vertex that does not exist
	ErrIndexOutOfRange = errors.New("vertex index out of range")
)

// ParseError reports the line of a mesh file that could not be parsed
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// maxLineSize bounds a single OBJ line; long face lists on dense meshes exceed bufio's default
const maxLineSize = 1024 * 1024

// ParseOBJ reads a Wavefront OBJ file and returns its mesh
func ParseOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ReadOBJ(file, name)
}

// ReadOBJ parses OBJ text line by line.
//
// Only two directives are understood, dispatched on the first character of
// the line: "v x y z" appends a position to the 1-indexed vertex list and
// "f i1 i2 ... iN" emits triangles from it. "vt" lines and every other line
// are skipped with a debug log entry. Any malformed v or f line aborts
// parsing; there is no partial mesh.
func ReadOBJ(reader io.Reader, name string) (*Mesh, error) {
	logger := Logger()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	mesh := New(name)
	var vertices []geometry.Vector3

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" {
			logger.Debug("skipping empty line", "line", lineNo)
			continue
		}

		switch line[0] {
		case 'v':
			if strings.HasPrefix(line, "vt") {
				logger.Debug("skipping texture coordinate", "line", lineNo)
				continue
			}
			vertex, err := parseVertex(line[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			vertices = append(vertices, vertex)

		case 'f':
			triangles, err := parseFace(line[1:], vertices)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			for _, triangle := range triangles {
				mesh.AddTriangle(triangle)
			}

		default:
			logger.Debug("skipping unsupported line", "line", lineNo, "prefix", string(line[0]))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	logger.Info("loaded OBJ mesh", "name", name, "vertices", len(vertices), "triangles", mesh.TriangleCount())
	return mesh, nil
}

func parseVertex(rest string) (geometry.Vector3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: got %d", ErrVertexArity, len(fields))
	}

	var coords [3]float32
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: %q", ErrMalformedNumber, fields[i])
		}
		coords[i] = float32(value)
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

// parseFace resolves 1-based indices against vertices and triangulates.
// Faces with more than 3 indices emit (0,1,2) and then (i-3, i-1, i) for
// every following i. For quads this matches a fan from the first vertex;
// longer polygons get the sliding window instead.
func parseFace(rest string, vertices []geometry.Vector3) ([]geometry.Triangle, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrFaceArity, len(fields))
	}

	corners := make([]geometry.Vector3, len(fields))
	for i, field := range fields {
		index, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, field)
		}
		if index < 1 || index > int64(len(vertices)) {
			return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrIndexOutOfRange, index, len(vertices))
		}
		corners[i] = vertices[index-1]
	}

	triangles := []geometry.Triangle{geometry.NewTriangle(corners[0], corners[1], corners[2])}
	for i := 3; i < len(corners); i++ {
		triangles = append(triangles, geometry.NewTriangle(corners[i-3], corners[i-1], corners[i]))
	}
	return triangles, nil
}
