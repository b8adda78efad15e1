package methods

import (
	"fmt"

	"github.com/GrainArc/TerraMesh/Mesh3D"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// ConvertMeshToDXF 将三维网格的面要素以闭合多段线写入DXF
// 每个面输出为一条首尾相接的LwPolyline（XY平面线框）
func ConvertMeshToDXF(obj *Mesh3D.Object3D, outputFilename string) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	layerName := "Mesh"
	d.AddLayer(layerName, color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer(layerName)

	vertices := obj.Vertices()
	for _, face := range obj.Faces() {
		lwp := entity.NewLwPolyline(len(face) + 1)
		for j, idx := range face {
			// OBJ索引从1开始
			v := vertices[idx-1]
			lwp.Vertices[j] = []float64{v[0], v[1]}
		}
		first := vertices[face[0]-1]
		lwp.Vertices[len(face)] = []float64{first[0], first[1]}
		d.AddEntity(lwp)
	}

	if err := d.SaveAs(outputFilename); err != nil {
		return fmt.Errorf("保存DXF文件 %s 失败: %w", outputFilename, err)
	}
	return nil
}
