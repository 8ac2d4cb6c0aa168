package mesh

import "github.com/Faultbox/meshkit/pkg/geometry"

// attrib describes one interleaved attribute channel.
type attrib struct {
	location   uint32
	components int32
	offset     int // in floats from the start of a vertex
}

// layout is the ordered set of channels present in a buffer.
type layout []attrib

// stride returns the vertex size in floats.
func (l layout) stride() int {
	last := l[len(l)-1]
	return last.offset + int(last.components)
}

// layoutFor builds the interleaving layout for the channels present in
// buf. Position is always first; optional channels keep a fixed
// location so shaders can bind by convention regardless of which
// channels a given buffer carries.
func layoutFor(buf *geometry.Buffer) layout {
	n := len(buf.Vertices)
	l := layout{{location: locPosition, components: 3, offset: 0}}
	offset := 3

	add := func(location uint32, components int32, present bool) {
		if !present {
			return
		}
		l = append(l, attrib{location: location, components: components, offset: offset})
		offset += int(components)
	}

	add(locNormal, 3, len(buf.Normals) == n)
	add(locUV, 2, len(buf.UV) == n)
	add(locUV2, 2, len(buf.UV2) == n)
	add(locUV3, 2, len(buf.UV3) == n)
	add(locColor, 4, len(buf.Colors) == n)
	add(locTangent, 4, len(buf.Tangents) == n)

	return l
}

// interleave packs the present channels vertex by vertex in layout
// order. Channels absent from the buffer contribute nothing; they are
// left unset on the host mesh rather than zero-filled.
func interleave(buf *geometry.Buffer, l layout) []float32 {
	n := len(buf.Vertices)
	stride := l.stride()
	data := make([]float32, 0, n*stride)

	for i := 0; i < n; i++ {
		v := buf.Vertices[i]
		data = append(data, v.X, v.Y, v.Z)

		if len(buf.Normals) == n {
			nm := buf.Normals[i]
			data = append(data, nm.X, nm.Y, nm.Z)
		}
		if len(buf.UV) == n {
			data = append(data, buf.UV[i].X, buf.UV[i].Y)
		}
		if len(buf.UV2) == n {
			data = append(data, buf.UV2[i].X, buf.UV2[i].Y)
		}
		if len(buf.UV3) == n {
			data = append(data, buf.UV3[i].X, buf.UV3[i].Y)
		}
		if len(buf.Colors) == n {
			c := buf.Colors[i]
			data = append(data, c[0], c[1], c[2], c[3])
		}
		if len(buf.Tangents) == n {
			tg := buf.Tangents[i]
			data = append(data, tg[0], tg[1], tg[2], tg[3])
		}
	}

	return data
}

// narrowIndices converts indices to the 16-bit encoding. Callers must
// have resolved the effective index format first: every value fits
// because the wide format is forced at 65535 vertices.
func narrowIndices(indices []uint32) []uint16 {
	out := make([]uint16, len(indices))
	for i, idx := range indices {
		out[i] = uint16(idx)
	}
	return out
}
