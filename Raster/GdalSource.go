package Raster

import (
	"fmt"

	"github.com/GrainArc/Gogeo"
)

// GdalSource 基于GDAL的DEM数据源，支持GDAL驱动的任意栅格格式
// 高程取第1波段，整块读取一次
type GdalSource struct {
	path      string
	rd        *Gogeo.RasterDataset
	width     int
	height    int
	transform [6]float64
}

// OpenGdal 打开GDAL栅格数据源
func OpenGdal(path string) (*GdalSource, error) {
	rd, err := Gogeo.OpenRasterDataset(path, false)
	if err != nil {
		return nil, fmt.Errorf("打开栅格文件 %s 失败: %w", path, err)
	}
	info := rd.GetInfo()
	if info.Width <= 0 || info.Height <= 0 {
		rd.Close()
		return nil, fmt.Errorf("栅格 %s 尺寸非法: %dx%d", path, info.Width, info.Height)
	}
	s := &GdalSource{
		path:   path,
		rd:     rd,
		width:  info.Width,
		height: info.Height,
	}
	if info.HasGeoInfo {
		s.transform = info.GeoTransform
	} else {
		// 无地理参考时退化为GDAL默认的单位像元变换
		s.transform = [6]float64{0, 1, 0, 0, 0, 1}
	}
	return s, nil
}

func (s *GdalSource) Path() string {
	return s.path
}

func (s *GdalSource) Dimensions() (int, int) {
	return s.width, s.height
}

func (s *GdalSource) GeoTransform() [6]float64 {
	return s.transform
}

// ReadElevation 整块读取第1波段，重整为height x width矩阵
// 无效值不做替换，原样返回
func (s *GdalSource) ReadElevation() ([][]float64, error) {
	calc := s.rd.NewBandCalculator()
	// 波段恒等表达式，取回完整的float64数组
	data, err := calc.Calculate("b1")
	if err != nil {
		return nil, fmt.Errorf("读取高程波段失败: %w", err)
	}
	if len(data) != s.width*s.height {
		return nil, fmt.Errorf("高程数据长度异常: 期望%d，实际%d", s.width*s.height, len(data))
	}
	zz := make([][]float64, s.height)
	for r := 0; r < s.height; r++ {
		zz[r] = data[r*s.width : (r+1)*s.width]
	}
	return zz, nil
}

// NoData 第1波段的无效值定义
func (s *GdalSource) NoData() (float64, bool) {
	info, err := s.rd.GetBandInfo(1)
	if err != nil {
		return 0, false
	}
	return info.NoDataValue, info.HasNoData
}

func (s *GdalSource) Close() error {
	s.rd.Close()
	return nil
}
