package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, f := range m.Facets {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", f.Normal.X, f.Normal.Y, f.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []Vec3{f.V1, f.V2, f.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)
	return bw.Flush()
}

// WriteBinary writes the model in binary STL format
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Facets))); err != nil {
		return fmt.Errorf("failed to write facet count: %w", err)
	}

	for i, f := range m.Facets {
		record := facetRecord{
			Normal: vec3To32(f.Normal),
			V1:     vec3To32(f.V1),
			V2:     vec3To32(f.V2),
			V3:     vec3To32(f.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes the model to path, binary or ASCII
func WriteFile(path string, m *Model, asBinary bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	write := WriteASCII
	if asBinary {
		write = WriteBinary
	}
	if err := write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func vec3To32(v Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
