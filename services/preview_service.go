package services

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/GrainArc/TerraMesh/Raster"
	"github.com/chai2010/webp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DemInfoResponse DEM基本信息
type DemInfoResponse struct {
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	GeoTransform [6]float64       `json:"geo_transform"`
	Bounds       [4]float64       `json:"bounds"` // minX, minY, maxX, maxY
	Footprint    *geojson.Feature `json:"footprint"`
}

// 支持无效值定义的数据源
type noDataSource interface {
	NoData() (float64, bool)
}

// GetDemInfo 获取DEM尺寸、仿射参数与GeoJSON范围
func (s *MeshService) GetDemInfo(sourcePath string) (*DemInfoResponse, error) {
	src, err := Raster.OpenDem(sourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	width, height := src.Dimensions()
	gt := src.GeoTransform()
	x0, y0 := gt[0], gt[3]
	x1 := gt[0] + float64(width)*gt[1]
	y1 := gt[3] + float64(height)*gt[5]

	bounds := [4]float64{
		math.Min(x0, x1), math.Min(y0, y1),
		math.Max(x0, x1), math.Max(y0, y1),
	}

	ring := orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["source"] = sourcePath

	return &DemInfoResponse{
		Width:        width,
		Height:       height,
		GeoTransform: gt,
		Bounds:       bounds,
		Footprint:    feature,
	}, nil
}

// GetDemPreview 将DEM第1波段归一化为灰度图并编码为WebP
// 无效值与NaN像元渲染为黑色
func (s *MeshService) GetDemPreview(sourcePath string) ([]byte, error) {
	src, err := Raster.OpenDem(sourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	zz, err := src.ReadElevation()
	if err != nil {
		return nil, err
	}

	var nodata float64
	var hasNoData bool
	if nd, ok := src.(noDataSource); ok {
		nodata, hasNoData = nd.NoData()
	}
	valid := func(v float64) bool {
		if math.IsNaN(v) {
			return false
		}
		return !hasNoData || v != nodata
	}

	// 扫描高程范围
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, row := range zz {
		for _, v := range row {
			if !valid(v) {
				continue
			}
			if v < minZ {
				minZ = v
			}
			if v > maxZ {
				maxZ = v
			}
		}
	}
	if minZ > maxZ {
		return nil, fmt.Errorf("栅格 %s 没有有效高程值", sourcePath)
	}

	width, height := src.Dimensions()
	img := image.NewGray(image.Rect(0, 0, width, height))
	scale := 0.0
	if maxZ > minZ {
		scale = 255.0 / (maxZ - minZ)
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			v := zz[r][c]
			if !valid(v) {
				continue
			}
			img.Pix[r*img.Stride+c] = uint8((v - minZ) * scale)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return nil, fmt.Errorf("编码预览图失败: %w", err)
	}
	return buf.Bytes(), nil
}
