package Mesh3D

import (
	"sort"
	"testing"
)

func TestMakeFaceArrayCounts(t *testing.T) {
	cases := []struct {
		width, height int
	}{
		{2, 2}, {3, 2}, {2, 3}, {5, 4}, {10, 10},
	}
	for _, tc := range cases {
		wantQuad := (tc.width - 1) * (tc.height - 1)
		if got := len(MakeFaceArray(tc.width, tc.height, true)); got != wantQuad {
			t.Errorf("%dx%d 四边面数 = %d, want %d", tc.width, tc.height, got, wantQuad)
		}
		if got := len(MakeFaceArray(tc.width, tc.height, false)); got != 2*wantQuad {
			t.Errorf("%dx%d 三角面数 = %d, want %d", tc.width, tc.height, got, 2*wantQuad)
		}
	}
}

func TestMakeFaceArrayIndexBounds(t *testing.T) {
	const width, height = 7, 5
	n := width * height
	for _, quad := range []bool{true, false} {
		for i, face := range MakeFaceArray(width, height, quad) {
			for _, idx := range face {
				if idx < 1 || idx > n {
					t.Fatalf("quad=%v face[%d]含越界索引 %d (允许[1,%d])", quad, i, idx, n)
				}
			}
		}
	}
}

func TestMakeFaceArrayTriangleSplit(t *testing.T) {
	// 2x2栅格只有一个邻域，固定沿左上-右下对角线拆分
	faces := MakeFaceArray(2, 2, false)
	if len(faces) != 2 {
		t.Fatalf("面数 = %d, want 2", len(faces))
	}
	want := []Face{{1, 3, 4}, {1, 4, 2}}
	for i := range want {
		if len(faces[i]) != 3 {
			t.Fatalf("faces[%d]有%d个索引, want 3", i, len(faces[i]))
		}
		for j := range want[i] {
			if faces[i][j] != want[i][j] {
				t.Errorf("faces[%d] = %v, want %v", i, faces[i], want[i])
				break
			}
		}
	}
}

func TestMakeFaceArrayQuadOrder(t *testing.T) {
	faces := MakeFaceArray(3, 2, true)
	want := []Face{{1, 4, 5, 2}, {2, 5, 6, 3}}
	for i := range want {
		for j := range want[i] {
			if faces[i][j] != want[i][j] {
				t.Errorf("faces[%d] = %v, want %v", i, faces[i], want[i])
				break
			}
		}
	}
}

func TestMakeFaceArrayQuadTriangleEquivalence(t *testing.T) {
	// 每个邻域两个三角面的顶点并集等于对应四边面的4个顶点
	const width, height = 6, 4
	quads := MakeFaceArray(width, height, true)
	tris := MakeFaceArray(width, height, false)
	for i, quad := range quads {
		set := map[int]bool{}
		for _, idx := range tris[2*i] {
			set[idx] = true
		}
		for _, idx := range tris[2*i+1] {
			set[idx] = true
		}
		var union []int
		for idx := range set {
			union = append(union, idx)
		}
		sort.Ints(union)
		wantSet := append([]int(nil), quad...)
		sort.Ints(wantSet)
		if len(union) != len(wantSet) {
			t.Fatalf("邻域%d: 三角顶点并集 %v != 四边面顶点 %v", i, union, wantSet)
		}
		for j := range wantSet {
			if union[j] != wantSet[j] {
				t.Fatalf("邻域%d: 三角顶点并集 %v != 四边面顶点 %v", i, union, wantSet)
			}
		}
	}
}

func TestMakeFaceArrayDegenerateGrid(t *testing.T) {
	for _, quad := range []bool{true, false} {
		if got := len(MakeFaceArray(1, 5, quad)); got != 0 {
			t.Errorf("1x5 quad=%v 面数 = %d, want 0", quad, got)
		}
		if got := len(MakeFaceArray(5, 1, quad)); got != 0 {
			t.Errorf("5x1 quad=%v 面数 = %d, want 0", quad, got)
		}
	}
}
