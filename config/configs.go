package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var Download string
var Upload string
var DeviceName string
var MainConfig Config

type Config struct {
	XMLName    xml.Name `xml:"config"`
	MainRouter string   `xml:"MainRouter"`
	Download   string   `xml:"download"`
	Upload     string   `xml:"upload"`
	DeviceName string   `xml:"DeviceName"`
}

func init() {
	// 默认值，config.xml存在时覆盖
	MainConfig = Config{
		MainRouter: "0.0.0.0:8426",
		Download:   "Download",
		Upload:     "Upload",
	}

	xmlFile, err := os.Open("config.xml")
	if err == nil {
		defer xmlFile.Close()
		xmlDecoder := xml.NewDecoder(xmlFile)
		if err = xmlDecoder.Decode(&MainConfig); err != nil {
			fmt.Println("Error  decoding  XML:", err)
		}
	}

	MainRouter = MainConfig.MainRouter
	Download = MainConfig.Download
	Upload = MainConfig.Upload
	DeviceName = MainConfig.DeviceName
}
