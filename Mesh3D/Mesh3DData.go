package Mesh3D

import "errors"

// RasterGeometry 栅格几何信息，来源于GDAL仿射参数（6项中只使用4项）
type RasterGeometry struct {
	Width      int
	Height     int
	OriginX    float64
	OriginY    float64
	PixelSizeX float64
	PixelSizeY float64 // 北朝上的栅格通常为负值
}

// Offset 顶点坐标偏移量 [x, y, z]，构建时从所有坐标中减去
type Offset [3]float64

// Vertex 单个顶点坐标 [x, y, z]
type Vertex [3]float64

// Face 面的顶点索引，按OBJ约定从1开始，三角面3个索引，四边面4个
type Face []int

// DemSource DEM栅格数据源，由Raster包提供具体实现
type DemSource interface {
	Path() string
	Dimensions() (int, int)
	GeoTransform() [6]float64
	ReadElevation() ([][]float64, error)
	Close() error
}

var (
	ErrNotBuilt    = errors.New("对象尚未从栅格构建")
	ErrBadSize     = errors.New("栅格尺寸非法")
	ErrBadGeometry = errors.New("栅格像元大小为0")
	ErrBadShape    = errors.New("高程矩阵与栅格尺寸不一致")
	ErrBadOrder    = errors.New("坐标顺序字符串无效")
)
