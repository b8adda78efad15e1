package views

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GrainArc/TerraMesh/config"
	"github.com/GrainArc/TerraMesh/methods"
	"github.com/GrainArc/TerraMesh/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// UserController 网格转换接口控制器
type UserController struct {
}

var meshService = &services.MeshService{}

// TaskStatusMessage WebSocket推送的任务状态
type TaskStatusMessage struct {
	Type      string `json:"type"`
	TaskID    string `json:"task_id"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// StartMeshConvert 提交DEM转换任务
func (uc *UserController) StartMeshConvert(c *gin.Context) {
	var req services.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	// 检查文件是否存在
	if _, err := os.Stat(req.SourcePath); os.IsNotExist(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "raster file not found: " + req.SourcePath})
		return
	}

	resp, err := meshService.StartMeshTask(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeshTaskStatus 查询任务状态
func (uc *UserController) GetMeshTaskStatus(c *gin.Context) {
	taskID := c.Param("taskId")
	record, err := meshService.GetTaskStatus(taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found: " + taskID})
		return
	}
	c.JSON(http.StatusOK, record)
}

// MeshTaskWebSocket 通过WebSocket推送任务状态，任务结束后关闭连接
func (uc *UserController) MeshTaskWebSocket(c *gin.Context) {
	taskID := c.Param("taskId")

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(500, gin.H{"error": "WebSocket升级失败"})
		return
	}
	defer ws.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		record, err := meshService.GetTaskStatus(taskID)
		if err != nil {
			fmt.Printf("查询任务 %s 状态失败: %v\n", taskID, err)
			return
		}
		msg := TaskStatusMessage{
			Type:      "status",
			TaskID:    taskID,
			Status:    record.Status,
			Timestamp: time.Now().UnixMilli(),
		}
		if err := ws.WriteJSON(msg); err != nil {
			fmt.Printf("发送状态消息失败: %v\n", err)
			return
		}
		if record.Status != 0 {
			// 任务已结束
			return
		}
	}
}

// DownloadMesh 将任务输出目录打包下载
func (uc *UserController) DownloadMesh(c *gin.Context) {
	taskID := c.Param("taskId")
	record, err := meshService.GetTaskStatus(taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found: " + taskID})
		return
	}
	if record.Status != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task not finished"})
		return
	}
	data, err := methods.ZipFileOut(record.OutputPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.zip", taskID))
	c.Data(http.StatusOK, "application/zip", data)
}

// DemInfo 查询DEM基本信息与GeoJSON范围
func (uc *UserController) DemInfo(c *gin.Context) {
	sourcePath := c.Query("path")
	if sourcePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: path"})
		return
	}
	info, err := meshService.GetDemInfo(sourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// DemPreview 返回DEM的灰度预览图
func (uc *UserController) DemPreview(c *gin.Context) {
	sourcePath := c.Query("path")
	if sourcePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: path"})
		return
	}
	data, err := meshService.GetDemPreview(sourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/webp", data)
}

// UploadRaster 上传DEM栅格，zip/rar压缩包自动解压
func (uc *UserController) UploadRaster(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload: " + err.Error()})
		return
	}
	if err := os.MkdirAll(config.Upload, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	dst := filepath.Join(config.Upload, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	saved := dst
	ext := strings.ToLower(filepath.Ext(dst))
	if ext == ".zip" || ext == ".rar" {
		if err := methods.Unzip(dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "解压失败: " + err.Error()})
			return
		}
		// 在解压目录中查找栅格文件
		unpath := strings.TrimSuffix(dst, filepath.Ext(dst))
		for _, candidate := range []string{".tif", ".tiff", ".asc", ".img"} {
			if found := methods.FindDemFile(unpath, candidate); found != nil {
				saved = *found
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"path": saved})
}

// CleanUpload 清空上传目录
func (uc *UserController) CleanUpload(c *gin.Context) {
	if err := methods.DeleteFiles(config.Upload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
