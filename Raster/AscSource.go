package Raster

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AscSource 纯Go实现的ESRI ASCII栅格(AAIGrid)数据源
// 不依赖GDAL，便于无CGO环境与测试使用
// 几何语义与GDAL的AAIGrid驱动一致：左下角原点换算为北朝上的仿射参数
type AscSource struct {
	path      string
	width     int
	height    int
	transform [6]float64
	nodata    float64
	hasNoData bool
	zz        [][]float64
}

// OpenAsc 打开并解析ESRI ASCII栅格文件
// 头部支持 ncols/nrows/xllcorner/yllcorner/xllcenter/yllcenter/cellsize/nodata_value
func OpenAsc(path string) (*AscSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开栅格文件 %s 失败: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	s := &AscSource{path: path}
	var (
		xll, yll  float64
		xCenter   bool
		yCenter   bool
		cellsize  float64
		firstData string
	)

	for {
		tok, ok := next()
		if !ok {
			return nil, fmt.Errorf("栅格 %s 缺少数据区", path)
		}
		key := strings.ToLower(tok)
		switch key {
		case "ncols", "nrows", "xllcorner", "yllcorner", "xllcenter", "yllcenter", "cellsize", "nodata_value":
			val, ok := next()
			if !ok {
				return nil, fmt.Errorf("栅格 %s 头部字段 %s 缺少值", path, tok)
			}
			fv, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("栅格 %s 头部字段 %s 的值非法: %q", path, tok, val)
			}
			switch key {
			case "ncols":
				s.width = int(fv)
			case "nrows":
				s.height = int(fv)
			case "xllcorner":
				xll = fv
			case "xllcenter":
				xll, xCenter = fv, true
			case "yllcorner":
				yll = fv
			case "yllcenter":
				yll, yCenter = fv, true
			case "cellsize":
				cellsize = fv
			case "nodata_value":
				s.nodata, s.hasNoData = fv, true
			}
		default:
			firstData = tok
		}
		if firstData != "" {
			break
		}
	}

	if s.width < 1 || s.height < 1 {
		return nil, fmt.Errorf("栅格 %s 尺寸非法: %dx%d", path, s.width, s.height)
	}
	if cellsize <= 0 {
		return nil, fmt.Errorf("栅格 %s 像元大小非法: %g", path, cellsize)
	}
	if xCenter {
		xll -= cellsize / 2
	}
	if yCenter {
		yll -= cellsize / 2
	}
	// 数据自上而下，左下角坐标换算为左上角原点
	s.transform = [6]float64{xll, cellsize, 0, yll + float64(s.height)*cellsize, 0, -cellsize}

	s.zz = make([][]float64, s.height)
	tok := firstData
	for r := 0; r < s.height; r++ {
		row := make([]float64, s.width)
		for c := 0; c < s.width; c++ {
			if tok == "" {
				var ok bool
				tok, ok = next()
				if !ok {
					return nil, fmt.Errorf("栅格 %s 数据不完整: 第%d行第%d列之后缺失", path, r, c)
				}
			}
			fv, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("栅格 %s 第%d行第%d列的值非法: %q", path, r, c, tok)
			}
			row[c] = fv
			tok = ""
		}
		s.zz[r] = row
	}
	return s, nil
}

func (s *AscSource) Path() string {
	return s.path
}

func (s *AscSource) Dimensions() (int, int) {
	return s.width, s.height
}

func (s *AscSource) GeoTransform() [6]float64 {
	return s.transform
}

// ReadElevation 返回解析时读入的高程矩阵，无效值原样保留
func (s *AscSource) ReadElevation() ([][]float64, error) {
	return s.zz, nil
}

// NoData 头部声明的无效值
func (s *AscSource) NoData() (float64, bool) {
	return s.nodata, s.hasNoData
}

func (s *AscSource) Close() error {
	return nil
}
