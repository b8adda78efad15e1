package Mesh3D

import (
	"errors"
	"math"
	"testing"
)

func demoGeometry() RasterGeometry {
	return RasterGeometry{
		Width:      2,
		Height:     2,
		OriginX:    0,
		OriginY:    0,
		PixelSizeX: 1,
		PixelSizeY: -1,
	}
}

func demoElevation() [][]float64 {
	return [][]float64{{10, 20}, {30, 40}}
}

func TestMakeVertexArrayDefaultOffset(t *testing.T) {
	vertices, offset, err := MakeVertexArray(demoGeometry(), demoElevation(), nil)
	if err != nil {
		t.Fatalf("MakeVertexArray: %v", err)
	}
	// 像元高度为负，min(y)取末行坐标
	if offset != (Offset{0, -1, 0}) {
		t.Fatalf("offset = %v, want [0 -1 0]", offset)
	}
	want := []Vertex{{0, 1, 10}, {1, 1, 20}, {0, 0, 30}, {1, 0, 40}}
	if len(vertices) != len(want) {
		t.Fatalf("len(vertices) = %d, want %d", len(vertices), len(want))
	}
	for i := range want {
		if vertices[i] != want[i] {
			t.Errorf("vertices[%d] = %v, want %v", i, vertices[i], want[i])
		}
	}
}

func TestMakeVertexArrayOffsetIdempotence(t *testing.T) {
	auto, offset, err := MakeVertexArray(demoGeometry(), demoElevation(), nil)
	if err != nil {
		t.Fatalf("MakeVertexArray: %v", err)
	}
	explicit, _, err := MakeVertexArray(demoGeometry(), demoElevation(), &offset)
	if err != nil {
		t.Fatalf("MakeVertexArray with explicit offset: %v", err)
	}
	for i := range auto {
		if auto[i] != explicit[i] {
			t.Errorf("vertices[%d]: auto %v != explicit %v", i, auto[i], explicit[i])
		}
	}
}

func TestMakeVertexArrayExplicitOffset(t *testing.T) {
	offset := Offset{100, 200, 5}
	vertices, got, err := MakeVertexArray(demoGeometry(), demoElevation(), &offset)
	if err != nil {
		t.Fatalf("MakeVertexArray: %v", err)
	}
	if got != offset {
		t.Fatalf("offset = %v, want %v", got, offset)
	}
	if vertices[0] != (Vertex{-100, -200, 5}) {
		t.Errorf("vertices[0] = %v, want [-100 -200 5]", vertices[0])
	}
}

func TestMakeVertexArrayDegenerateGrid(t *testing.T) {
	geo := RasterGeometry{Width: 1, Height: 3, OriginX: 10, OriginY: 20, PixelSizeX: 2, PixelSizeY: -2}
	zz := [][]float64{{1}, {2}, {3}}
	vertices, _, err := MakeVertexArray(geo, zz, nil)
	if err != nil {
		t.Fatalf("MakeVertexArray: %v", err)
	}
	if len(vertices) != 3 {
		t.Fatalf("len(vertices) = %d, want 3", len(vertices))
	}
}

func TestMakeVertexArrayNaNPassthrough(t *testing.T) {
	zz := [][]float64{{math.NaN(), 20}, {30, 40}}
	vertices, _, err := MakeVertexArray(demoGeometry(), zz, nil)
	if err != nil {
		t.Fatalf("MakeVertexArray: %v", err)
	}
	if !math.IsNaN(vertices[0][2]) {
		t.Errorf("vertices[0].z = %v, want NaN", vertices[0][2])
	}
}

func TestMakeVertexArrayErrors(t *testing.T) {
	geo := demoGeometry()
	geo.PixelSizeX = 0
	if _, _, err := MakeVertexArray(geo, demoElevation(), nil); !errors.Is(err, ErrBadGeometry) {
		t.Errorf("零像元大小: err = %v, want ErrBadGeometry", err)
	}

	if _, _, err := MakeVertexArray(demoGeometry(), [][]float64{{1, 2}}, nil); !errors.Is(err, ErrBadShape) {
		t.Errorf("行数不一致: err = %v, want ErrBadShape", err)
	}
	if _, _, err := MakeVertexArray(demoGeometry(), [][]float64{{1}, {2}}, nil); !errors.Is(err, ErrBadShape) {
		t.Errorf("列数不一致: err = %v, want ErrBadShape", err)
	}

	bad := demoGeometry()
	bad.Width = 0
	if _, _, err := MakeVertexArray(bad, demoElevation(), nil); !errors.Is(err, ErrBadSize) {
		t.Errorf("零宽度: err = %v, want ErrBadSize", err)
	}
}
