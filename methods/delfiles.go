package methods

import (
	"fmt"
	"os"
	"path/filepath"
)

// 删除文件夹内的所有文件
func DeleteFiles(dirPath string) error {
	// 读取目录中的所有文件和子目录
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("读取目录失败: %w", err)
	}

	// 遍历删除目录中的所有内容
	for _, entry := range entries {
		path := filepath.Join(dirPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("删除 %s 失败: %w", path, err)
		}
	}

	return nil
}

// FindDemFile 在目录中查找第一个指定扩展名的文件
func FindDemFile(dir string, ex string) *string {
	files, err := os.ReadDir(dir)
	if err != nil {
		fmt.Println("读取文件夹失败:", err)
		return nil
	}
	for _, file := range files {
		if !file.IsDir() {
			ext := filepath.Ext(file.Name())
			if ext == ex {
				path := filepath.Join(dir, file.Name())
				return &path
			}
		}
	}
	return nil
}
