package passes

// fullScreenQuadVertices is position (xyz) + uv (xy) per vertex, stride
// 20 bytes, covering clip space corner to corner. Grounded on the
// original LightingPass::CreateFullScreenQuad.
var fullScreenQuadVertices = []float32{
	-1, 1, 0, 0, 0,
	1, 1, 0, 1, 0,
	1, -1, 0, 1, 1,
	-1, -1, 0, 0, 1,
}

var fullScreenQuadIndices = []uint16{0, 1, 2, 0, 2, 3}

const fullScreenQuadStride = 5 * 4

func fullScreenQuadVertexBytes() []byte {
	return float32SliceBytes(fullScreenQuadVertices)
}

func fullScreenQuadIndexBytes() []byte {
	return uint16SliceBytes(fullScreenQuadIndices)
}
