package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// sniffSize is how much of the stream is inspected to tell ASCII from binary
const sniffSize = 512

// facetRecord is the 50 byte little endian layout of a binary facet
type facetRecord struct {
	Normal, V1, V2, V3 [3]float32
	Attributes         uint16
}

func (r facetRecord) facet() Facet {
	return Facet{
		Normal: vec3From32(r.Normal),
		V1:     vec3From32(r.V1),
		V2:     vec3From32(r.V2),
		V3:     vec3From32(r.V3),
	}
}

// Parse reads the STL file at filename
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return model, nil
}

// Read decodes an ASCII or binary STL stream. Binary headers may start with
// "solid" too, so ASCII also requires a facet or endsolid keyword near the
// start.
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(head) == 0 {
		return nil, errors.New("empty input")
	}

	if looksASCII(head) {
		return readASCII(br)
	}
	return readBinary(br)
}

func looksASCII(head []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(head, " \t\r\n"), []byte("solid")) {
		return false
	}
	return bytes.Contains(head, []byte("facet")) || bytes.Contains(head, []byte("endsolid"))
}

type asciiState int

const (
	expectSolid asciiState = iota
	inSolid
	inFacet
	inLoop
	loopClosed
	solidClosed
)

// asciiDecoder follows the solid/facet/outer loop nesting one line at a time
type asciiDecoder struct {
	model    *Model
	state    asciiState
	facet    Facet
	vertices int
}

func (d *asciiDecoder) line(fields []string) error {
	keyword := fields[0]
	switch {
	case keyword == "solid" && d.state == expectSolid:
		d.model.Name = strings.Join(fields[1:], " ")
		d.state = inSolid

	case keyword == "facet" && d.state == inSolid:
		if len(fields) != 5 || fields[1] != "normal" {
			return errors.New("expected facet normal x y z")
		}
		normal, err := parseVec3(fields[2:])
		if err != nil {
			return fmt.Errorf("invalid normal: %w", err)
		}
		d.facet = Facet{Normal: normal}
		d.state = inFacet

	case keyword == "outer" && d.state == inFacet:
		d.vertices = 0
		d.state = inLoop

	case keyword == "vertex" && d.state == inLoop:
		if len(fields) != 4 {
			return errors.New("expected vertex x y z")
		}
		if d.vertices == 3 {
			return errors.New("more than 3 vertices in facet")
		}
		v, err := parseVec3(fields[1:])
		if err != nil {
			return fmt.Errorf("invalid vertex: %w", err)
		}
		switch d.vertices {
		case 0:
			d.facet.V1 = v
		case 1:
			d.facet.V2 = v
		default:
			d.facet.V3 = v
		}
		d.vertices++

	case keyword == "endloop" && d.state == inLoop:
		if d.vertices != 3 {
			return fmt.Errorf("facet has %d vertices", d.vertices)
		}
		d.state = loopClosed

	case keyword == "endfacet" && d.state == loopClosed:
		d.model.AddFacet(d.facet)
		d.state = inSolid

	case keyword == "endsolid" && d.state == inSolid:
		d.state = solidClosed

	default:
		return fmt.Errorf("unexpected %q", keyword)
	}
	return nil
}

func readASCII(r io.Reader) (*Model, error) {
	d := &asciiDecoder{model: NewModel("")}
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := d.line(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if d.state == solidClosed {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ASCII STL: %w", err)
	}
	if d.state != solidClosed && d.state != inSolid {
		return nil, errors.New("unexpected end of input inside a facet")
	}
	return d.model, nil
}

func readBinary(r io.Reader) (*Model, error) {
	var header struct {
		Name  [80]byte
		Count uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read binary header: %w", err)
	}

	model := NewModel(string(bytes.TrimRight(header.Name[:], "\x00 ")))
	for i := range header.Count {
		var record facetRecord
		if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read facet %d of %d: %w", i, header.Count, err)
		}
		model.AddFacet(record.facet())
	}
	return model, nil
}

func parseVec3(fields []string) (Vec3, error) {
	var v [3]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Vec3{}, err
		}
		v[i] = f
	}
	return Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vec3From32(v [3]float32) Vec3 {
	return Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
