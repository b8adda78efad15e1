package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GrainArc/TerraMesh/Mesh3D"
	"github.com/GrainArc/TerraMesh/Raster"
	"github.com/GrainArc/TerraMesh/config"
	"github.com/GrainArc/TerraMesh/methods"
	"github.com/GrainArc/TerraMesh/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConvertRequest 转换请求参数
type ConvertRequest struct {
	SourcePath string    `json:"source_path" binding:"required"`
	OutputPath string    `json:"output_path"`
	Offset     []float64 `json:"offset"` //三个分量 [x y z]，为空时自动取 min(x) min(y) 0
	Order      string    `json:"order"`  //顶点坐标输出顺序，默认yzx
	Quad       bool      `json:"quad"`   //true生成四边面
	ExportDXF  bool      `json:"export_dxf"`
	Verbose    bool      `json:"-"`
}

// ConvertResult 同步转换结果
type ConvertResult struct {
	OutputPath  string     `json:"output_path"`
	DXFPath     string     `json:"dxf_path,omitempty"`
	VertexCount int        `json:"vertex_count"`
	FaceCount   int        `json:"face_count"`
	Offset      [3]float64 `json:"offset"` //实际减去的偏移量
}

// MeshTaskResponse 异步任务响应
type MeshTaskResponse struct {
	TaskID     string `json:"task_id"`
	OutputPath string `json:"output_path"`
	Message    string `json:"message"`
}

// MeshService DEM转三维网格服务
type MeshService struct {
}

// Convert 同步执行DEM到OBJ的转换
func (s *MeshService) Convert(req *ConvertRequest) (*ConvertResult, error) {
	if req.Order == "" {
		req.Order = "yzx"
	}
	var offset *Mesh3D.Offset
	switch len(req.Offset) {
	case 0:
	case 3:
		offset = &Mesh3D.Offset{req.Offset[0], req.Offset[1], req.Offset[2]}
	default:
		return nil, fmt.Errorf("偏移量必须为3个分量，实际%d个", len(req.Offset))
	}

	src, err := Raster.OpenDem(req.SourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	obj, err := Mesh3D.FromRaster(src, offset, req.Quad, req.Verbose)
	if err != nil {
		return nil, err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = obj.DefaultOutput()
	}
	if err := obj.WriteObj(outputPath, req.Order); err != nil {
		return nil, err
	}

	result := &ConvertResult{
		OutputPath:  outputPath,
		VertexCount: len(obj.Vertices()),
		FaceCount:   len(obj.Faces()),
		Offset:      [3]float64(obj.Offset()),
	}

	if req.ExportDXF {
		dxfPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".dxf"
		if err := methods.ConvertMeshToDXF(obj, dxfPath); err != nil {
			return nil, err
		}
		result.DXFPath = dxfPath
	}
	return result, nil
}

// StartMeshTask 启动异步转换任务
func (s *MeshService) StartMeshTask(req *ConvertRequest) (*MeshTaskResponse, error) {
	// 生成TaskID
	taskID := uuid.New().String()
	// 构建输出目录
	outputDir := filepath.Join(config.MainConfig.Download, taskID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	if req.OutputPath == "" {
		base := filepath.Base(req.SourcePath)
		req.OutputPath = filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".obj")
	}
	// 序列化参数
	argsJSON, _ := json.Marshal(req)
	// 创建记录
	record := &models.MeshRecord{
		TaskID:     taskID,
		SourcePath: req.SourcePath,
		OutputPath: outputDir,
		Status:     0, // 运行中
		TypeName:   "dem2obj",
		Args:       datatypes.JSON(argsJSON),
	}
	if err := models.GetDB().Create(record).Error; err != nil {
		return nil, fmt.Errorf("创建任务记录失败: %w", err)
	}
	// 启动异步任务
	go s.executeMeshTask(taskID, req)
	return &MeshTaskResponse{
		TaskID:     taskID,
		OutputPath: outputDir,
		Message:    "任务已提交",
	}, nil
}

// executeMeshTask 执行转换任务
func (s *MeshService) executeMeshTask(taskID string, req *ConvertRequest) {
	var finalStatus int = 1 // 默认成功
	defer func() {
		if r := recover(); r != nil {
			finalStatus = 2 // 执行失败
		}
		// 更新任务状态
		models.GetDB().Model(&models.MeshRecord{}).Where("task_id = ?", taskID).Update("status", finalStatus)
	}()
	if _, err := s.Convert(req); err != nil {
		finalStatus = 2
		return
	}
}

// GetTaskStatus 查询任务状态
func (s *MeshService) GetTaskStatus(taskID string) (*models.MeshRecord, error) {
	var record models.MeshRecord
	if err := models.GetDB().Where("task_id = ?", taskID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
