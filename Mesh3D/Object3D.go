package Mesh3D

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// Object3D 基于OBJ格式的简单三维对象
// 生命周期：FromRaster构建一次，WriteObj可重复写出到不同目标
// 构建完成后顶点与面序列不再变化，单个实例不支持并发使用
type Object3D struct {
	InputFile string
	Quad      bool

	built    bool
	offset   Offset
	vertices []Vertex
	faces    []Face
}

// FromRaster 从DEM栅格数据源构建Object3D
// offset为nil时自动取 [min(x), min(y), 0]
// quad为true生成四边面，否则生成三角面
// verbose为true打印处理详情
func FromRaster(src DemSource, offset *Offset, quad bool, verbose bool) (*Object3D, error) {
	width, height := src.Dimensions()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("栅格 %s: %w: %dx%d", src.Path(), ErrBadSize, width, height)
	}
	gt := src.GeoTransform()
	geo := RasterGeometry{
		Width:      width,
		Height:     height,
		OriginX:    gt[0],
		PixelSizeX: gt[1],
		OriginY:    gt[3],
		PixelSizeY: gt[5],
	}

	if verbose {
		log.Printf("读取栅格 %s，尺寸 %d x %d，原点 (%g, %g)，像元 (%g, %g)",
			src.Path(), width, height, geo.OriginX, geo.OriginY, geo.PixelSizeX, geo.PixelSizeY)
	}

	zz, err := src.ReadElevation()
	if err != nil {
		return nil, fmt.Errorf("栅格 %s: 读取高程数据失败: %w", src.Path(), err)
	}

	obj := &Object3D{InputFile: src.Path(), Quad: quad}
	obj.vertices, obj.offset, err = MakeVertexArray(geo, zz, offset)
	if err != nil {
		return nil, fmt.Errorf("栅格 %s: %w", src.Path(), err)
	}
	if verbose {
		log.Printf("移除偏移量: %v", obj.offset)
	}
	obj.faces = MakeFaceArray(width, height, quad)
	obj.built = true
	return obj, nil
}

// Vertices 行优先排列的顶点序列
func (o *Object3D) Vertices() []Vertex {
	return o.vertices
}

// Faces 面序列，索引从1开始
func (o *Object3D) Faces() []Face {
	return o.faces
}

// Offset 构建时实际减去的偏移量
func (o *Object3D) Offset() Offset {
	return o.offset
}

// DefaultOutput 默认输出路径：输入文件扩展名替换为.obj
func (o *Object3D) DefaultOutput() string {
	return strings.TrimSuffix(o.InputFile, filepath.Ext(o.InputFile)) + ".obj"
}

// WriteObj 将对象写出为OBJ文件
// filename为空时使用默认输出路径，order为顶点坐标输出顺序
// 未构建的对象直接拒绝写出
func (o *Object3D) WriteObj(filename, order string) error {
	if !o.built {
		return ErrNotBuilt
	}
	if filename == "" {
		filename = o.DefaultOutput()
	}
	return WriteObjFile(filename, o.InputFile, o.vertices, o.faces, order)
}
