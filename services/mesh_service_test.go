package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDemoAsc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dem.asc")
	content := `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
1 2 3
4 5 6
7 8 9
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)
	output := filepath.Join(filepath.Dir(source), "dem.obj")

	result, err := svc.Convert(&ConvertRequest{
		SourcePath: source,
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if result.VertexCount != 9 {
		t.Errorf("顶点数 = %d, want 9", result.VertexCount)
	}
	if result.FaceCount != 8 {
		t.Errorf("三角面数 = %d, want 8", result.FaceCount)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("读取输出: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "# vertex coordinates order: yzx") {
		t.Errorf("默认顺序应为yzx: %q", text)
	}
	if !strings.Contains(text, "# Vertices: 9") || !strings.Contains(text, "# Faces: 8") {
		t.Errorf("头部计数异常: %q", text)
	}
}

func TestConvertQuadDefaultOutput(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)

	result, err := svc.Convert(&ConvertRequest{
		SourcePath: source,
		Quad:       true,
		Order:      "xyz",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := strings.TrimSuffix(source, ".asc") + ".obj"
	if result.OutputPath != want {
		t.Errorf("默认输出路径 = %q, want %q", result.OutputPath, want)
	}
	if result.FaceCount != 4 {
		t.Errorf("四边面数 = %d, want 4", result.FaceCount)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("默认输出文件不存在: %v", err)
	}
}

func TestConvertExplicitOffset(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)

	result, err := svc.Convert(&ConvertRequest{
		SourcePath: source,
		OutputPath: filepath.Join(filepath.Dir(source), "off.obj"),
		Offset:     []float64{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if result.Offset != [3]float64{1, 2, 3} {
		t.Errorf("偏移量 = %v, want [1 2 3]", result.Offset)
	}
}

func TestConvertBadOffset(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)
	if _, err := svc.Convert(&ConvertRequest{SourcePath: source, Offset: []float64{1, 2}}); err == nil {
		t.Fatal("偏移分量数非法时应报错")
	}
}

func TestConvertMissingSource(t *testing.T) {
	svc := &MeshService{}
	if _, err := svc.Convert(&ConvertRequest{SourcePath: filepath.Join(t.TempDir(), "none.asc")}); err == nil {
		t.Fatal("数据源不存在时应报错")
	}
}

func TestGetDemInfo(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)

	info, err := svc.GetDemInfo(source)
	if err != nil {
		t.Fatalf("GetDemInfo: %v", err)
	}
	if info.Width != 3 || info.Height != 3 {
		t.Errorf("尺寸 = %dx%d, want 3x3", info.Width, info.Height)
	}
	if info.Bounds != [4]float64{0, 0, 3, 3} {
		t.Errorf("Bounds = %v, want [0 0 3 3]", info.Bounds)
	}
	if info.Footprint == nil {
		t.Fatal("Footprint为空")
	}
}

func TestConvertBadOrder(t *testing.T) {
	svc := &MeshService{}
	source := writeDemoAsc(t)
	if _, err := svc.Convert(&ConvertRequest{SourcePath: source, Order: "xxy"}); err == nil {
		t.Fatal("坐标顺序非法时应报错")
	}
}
