package compas

import "sync"

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 1536),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// noClip is the clip rectangle outside any PushClipRect.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// maxCmdVertices bounds a command so its relative indices fit in uint16.
const maxCmdVertices = 1 << 16

// AcquireDrawList returns an empty DrawList from the pool. Pair it with
// ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList is the geometry of one frame. Every primitive is a quad of four
// vertices and six indices. Quads are grouped into commands that share a
// clip rectangle and texture; a command's indices are relative to its
// VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clips   [][4]float32
	clip    [4]float32
	texture uint32
}

// Clear empties the list and keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clips = dl.clips[:0]
	dl.clip = noClip
	dl.texture = 0
}

// PushClipRect restricts later primitives to the screen rectangle
// (x1, y1)-(x2, y2) until the matching PopClipRect.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clips = append(dl.clips, dl.clip)
	dl.clip = [4]float32{x1, y1, x2, y2}
}

// PopClipRect restores the clip rectangle in effect before the last push.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clips)
	if n == 0 {
		return
	}
	dl.clip = dl.clips[n-1]
	dl.clips = dl.clips[:n-1]
}

// SetTexture selects the texture sampled by later primitives. 0 means
// untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	dl.texture = textureID
}

// AddRect draws a filled rectangle in screen pixels.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the border of a rectangle, thickness pixels wide and
// inside the rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	t := thickness
	dl.AddRect(x, y, w, t, color)
	dl.AddRect(x, y+h-t, w, t, color)
	dl.AddRect(x, y+t, t, h-2*t, color)
	dl.AddRect(x+w-t, y+t, t, h-2*t, color)
}

// AddGlyphQuads draws quads tinted with color and sampling textureID. The
// previously selected texture is restored afterwards.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32, textureID uint32) {
	if transparent(color) || len(quads) == 0 {
		return
	}

	prev := dl.texture
	dl.texture = textureID
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
	dl.texture = prev
}

// command returns the command the next quad belongs to. A new one is
// opened when the clip rectangle or texture changed, or when the current
// one is full.
func (dl *DrawList) command() *DrawCmd {
	if n := len(dl.CmdBuffer); n > 0 {
		c := &dl.CmdBuffer[n-1]
		if c.ClipRect == dl.clip && c.TextureID == dl.texture &&
			len(dl.VtxBuffer)-int(c.VertexOffset)+4 <= maxCmdVertices {
			return c
		}
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

// addQuad appends a quad given clockwise from its top-left corner.
func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	cmd := dl.command()
	i := uint16(len(dl.VtxBuffer) - int(cmd.VertexOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
	cmd.ElemCount += 6
}

func transparent(color uint32) bool {
	return color>>24 == 0
}
