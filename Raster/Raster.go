package Raster

import (
	"path/filepath"
	"strings"

	"github.com/GrainArc/TerraMesh/Mesh3D"
)

// OpenDem 按扩展名打开DEM数据源
// .asc/.agr走纯Go解析，其余格式交给GDAL
func OpenDem(path string) (Mesh3D.DemSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc", ".agr":
		return OpenAsc(path)
	default:
		return OpenGdal(path)
	}
}
