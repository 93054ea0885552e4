package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// ParseSTL reads an STL file and returns a Mesh.
// It detects ASCII or binary format from the header. Facet normals are
// ignored; the vertex winding defines the front face.
func ParseSTL(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := reader.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	var mesh *Mesh
	if string(header) == "solid" {
		mesh, err = readASCIISTL(reader)
	} else {
		mesh, err = readBinarySTL(reader)
	}
	if err != nil {
		return nil, err
	}

	Logger().Info("loaded STL mesh", "name", mesh.Name, "triangles", mesh.TriangleCount())
	return mesh, nil
}

func readASCIISTL(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := New("")

	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, &ParseError{Line: lineNo, Err: ErrVertexArity}
			}
			var coords [3]float32
			for i := range coords {
				value, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrMalformedNumber, fields[i+1])}
				}
				coords[i] = float32(value)
			}
			vertices = append(vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "endfacet":
			if len(vertices) == 3 {
				mesh.AddTriangle(geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return mesh, nil
}

// stlFacet is the 50-byte binary STL record
type stlFacet struct {
	Normal     [3]float32
	Vertices   [3][3]float32
	Attributes uint16
}

func readBinarySTL(reader io.Reader) (*Mesh, error) {
	mesh := New("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	mesh.Name = string(bytes.TrimRight(header, "\x00 "))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet stlFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		v := facet.Vertices
		mesh.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(v[0][0], v[0][1], v[0][2]),
			geometry.NewVector3(v[1][0], v[1][1], v[1][2]),
			geometry.NewVector3(v[2][0], v[2][1], v[2][2]),
		))
	}

	return mesh, nil
}
