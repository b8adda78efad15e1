package Mesh3D

// MakeFaceArray 按2x2像元邻域生成面序列
// 邻域四个角点的0基索引为 a(左上)、a+width(左下)、a+width+1(右下)、a+1(右上)
// quad为true时每个邻域输出一个四边面，否则沿左上-右下对角线拆分为两个三角面
// 存入的索引统一转为1开始（OBJ约定）
// 宽或高小于2时没有完整邻域，返回空序列
func MakeFaceArray(width, height int, quad bool) []Face {
	if width < 2 || height < 2 {
		return []Face{}
	}
	count := (width - 1) * (height - 1)
	if !quad {
		count *= 2
	}
	faces := make([]Face, 0, count)
	for r := 0; r < height-1; r++ {
		for c := 0; c < width-1; c++ {
			a := r*width + c + 1
			if quad {
				faces = append(faces, Face{a, a + width, a + width + 1, a + 1})
			} else {
				faces = append(faces,
					Face{a, a + width, a + width + 1},
					Face{a, a + width + 1, a + 1})
			}
		}
	}
	return faces
}
