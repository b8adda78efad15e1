package Mesh3D

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseAxisOrder 解析坐标输出顺序字符串，必须为xyz的一个排列
// 返回的perm[i]表示输出第i列取顶点的哪个分量，如"yzx"返回[1 2 0]
func ParseAxisOrder(order string) ([3]int, error) {
	var perm [3]int
	if len(order) != 3 {
		return perm, fmt.Errorf("%w: %q", ErrBadOrder, order)
	}
	var seen [3]bool
	for i := 0; i < 3; i++ {
		p := strings.IndexByte("xyz", order[i])
		if p < 0 || seen[p] {
			return perm, fmt.Errorf("%w: %q", ErrBadOrder, order)
		}
		seen[p] = true
		perm[i] = p
	}
	return perm, nil
}

// WriteObjTo 将顶点与面序列按OBJ文本格式写入流
// source为写入文件头的数据来源标识，order为顶点坐标输出顺序
func WriteObjTo(w io.Writer, source string, vertices []Vertex, faces []Face, order string) error {
	perm, err := ParseAxisOrder(order)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Tessellation generated from file: '%s'\n", source)
	fmt.Fprintf(bw, "# vertex coordinates order: %s\n", order)
	fmt.Fprintf(bw, "# Vertices: %d\n", len(vertices))
	fmt.Fprintf(bw, "# Faces: %d\n", len(faces))

	for _, v := range vertices {
		bw.WriteString("v ")
		bw.WriteString(strconv.FormatFloat(v[perm[0]], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v[perm[1]], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v[perm[2]], 'g', -1, 64))
		bw.WriteByte('\n')
	}

	// 顶点块与面块之间留一个空行
	bw.WriteByte('\n')

	for _, f := range faces {
		bw.WriteByte('f')
		for _, idx := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteObjFile 写出OBJ文件，目标文件已存在则覆盖
// 顺序字符串先行校验，非法时不触碰目标文件
func WriteObjFile(filename, source string, vertices []Vertex, faces []Face, order string) error {
	if _, err := ParseAxisOrder(order); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("创建OBJ文件 %s 失败: %w", filename, err)
	}
	if err := WriteObjTo(f, source, vertices, faces, order); err != nil {
		f.Close()
		return fmt.Errorf("写入OBJ文件 %s 失败: %w", filename, err)
	}
	return f.Close()
}
