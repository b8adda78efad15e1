package Mesh3D

import "fmt"

// MakeVertexArray 根据栅格几何与高程矩阵生成顶点序列
// 顶点按行优先排列，行r列c的顶点下标为 r*Width+c
// offset为nil时自动取 [min(x), min(y), 0]，z方向不做自动偏移
// 注意像元大小为负时min取的是末行/末列的坐标
func MakeVertexArray(geo RasterGeometry, zz [][]float64, offset *Offset) ([]Vertex, Offset, error) {
	if geo.Width < 1 || geo.Height < 1 {
		return nil, Offset{}, fmt.Errorf("%w: %dx%d", ErrBadSize, geo.Width, geo.Height)
	}
	if geo.PixelSizeX == 0 || geo.PixelSizeY == 0 {
		return nil, Offset{}, ErrBadGeometry
	}
	if len(zz) != geo.Height {
		return nil, Offset{}, fmt.Errorf("%w: 期望%d行，实际%d行", ErrBadShape, geo.Height, len(zz))
	}
	for r := range zz {
		if len(zz[r]) != geo.Width {
			return nil, Offset{}, fmt.Errorf("%w: 第%d行期望%d列，实际%d列", ErrBadShape, r, geo.Width, len(zz[r]))
		}
	}

	x := make([]float64, geo.Width)
	for c := range x {
		x[c] = float64(c)*geo.PixelSizeX + geo.OriginX
	}
	y := make([]float64, geo.Height)
	for r := range y {
		y[r] = float64(r)*geo.PixelSizeY + geo.OriginY
	}

	var off Offset
	if offset != nil {
		off = *offset
	} else {
		off = Offset{minFloat(x), minFloat(y), 0}
	}

	vertices := make([]Vertex, 0, geo.Width*geo.Height)
	for r := 0; r < geo.Height; r++ {
		for c := 0; c < geo.Width; c++ {
			// 无效值/NaN高程原样保留
			vertices = append(vertices, Vertex{x[c] - off[0], y[r] - off[1], zz[r][c] - off[2]})
		}
	}
	return vertices, off, nil
}

func minFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
