package models

import "gorm.io/datatypes"

type MeshRecord struct {
	ID         int64          `gorm:"primary_key;autoIncrement"`
	TaskID     string         `gorm:"type:varchar(64);index"` //任务ID
	SourcePath string         `gorm:"type:varchar(255)"`      //DEM栅格源路径
	OutputPath string         `gorm:"type:varchar(255)"`      //转换结果的输出目录
	Status     int            //任务运行状态 0 运行中 1 执行完成  2 执行失败
	TypeName   string         `gorm:"type:varchar(255)"`      //转换类型
	Args       datatypes.JSON `gorm:"type:jsonb"`             //转换的输入参数
}

func (MeshRecord) TableName() string {
	return "mesh_record"
}
