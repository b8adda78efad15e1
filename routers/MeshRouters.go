package routers

import (
	"github.com/GrainArc/TerraMesh/views"
	"github.com/gin-gonic/gin"
)

func MeshRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	mapRouter := r.Group("/mesh")
	{
		// POST用于提交DEM转换任务配置
		mapRouter.POST("/convert/start", UserController.StartMeshConvert)
		// GET用于WebSocket连接
		mapRouter.GET("/convert/ws/:taskId", UserController.MeshTaskWebSocket)
		// GET用于查询任务状态（可选）
		mapRouter.GET("/convert/status/:taskId", UserController.GetMeshTaskStatus)
	}
	{
		// DEM信息与预览
		mapRouter.GET("/info", UserController.DemInfo)
		mapRouter.GET("/preview", UserController.DemPreview)
	}
	{
		// 数据上传与结果下载
		mapRouter.POST("/upload", UserController.UploadRaster)
		mapRouter.POST("/upload/clean", UserController.CleanUpload)
		mapRouter.GET("/download/:taskId", UserController.DownloadMesh)
	}
}
