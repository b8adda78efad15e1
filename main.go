package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/GrainArc/TerraMesh/config"
	"github.com/GrainArc/TerraMesh/models"
	"github.com/GrainArc/TerraMesh/routers"
	"github.com/GrainArc/TerraMesh/services"
	"github.com/gin-gonic/gin"
)

func main() {
	output := flag.String("o", "", "OBJ输出文件(默认与输入同名，扩展名改为.obj)")
	offsetStr := flag.String("offset", "", "三个偏移分量 \"x y z\"，写出前从坐标中减去(默认 min(x) min(y) 0)")
	order := flag.String("p", "yzx", "顶点坐标输出顺序")
	quad := flag.Bool("q", false, "生成四边面(默认三角面)")
	exportDXF := flag.Bool("dxf", false, "同时导出DXF线框")
	verbose := flag.Bool("v", false, "打印处理详情")
	serve := flag.Bool("serve", false, "启动HTTP服务")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "用法: %s [选项] <DEM栅格文件>\n不带输入文件时启动HTTP服务\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *serve || flag.NArg() == 0 {
		runServer()
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		log.Fatalf("多余的参数: %s", strings.Join(flag.Args()[1:], ", "))
	}

	req := &services.ConvertRequest{
		SourcePath: flag.Arg(0),
		OutputPath: *output,
		Order:      *order,
		Quad:       *quad,
		ExportDXF:  *exportDXF,
		Verbose:    *verbose,
	}
	if *offsetStr != "" {
		fields := strings.Fields(*offsetStr)
		if len(fields) != 3 {
			log.Fatalf("偏移量必须为3个分量: %q", *offsetStr)
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				log.Fatalf("偏移分量非法: %q", field)
			}
			req.Offset = append(req.Offset, v)
		}
	}

	svc := &services.MeshService{}
	result, err := svc.Convert(req)
	if err != nil {
		log.Fatalf("转换失败: %v", err)
	}
	if *verbose {
		log.Printf("顶点 %d 个，面 %d 个", result.VertexCount, result.FaceCount)
	}
	fmt.Println(result.OutputPath)
	if result.DXFPath != "" {
		fmt.Println(result.DXFPath)
	}
}

func runServer() {
	if err := models.InitDB(); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	r := gin.Default()
	routers.MeshRouters(r)
	log.Printf("服务启动: %s", config.MainRouter)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatal(err)
	}
}
