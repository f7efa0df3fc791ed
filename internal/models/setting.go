package models

// Setting 系统设置表（键值对存储），虚拟时钟保存在 time 键下
type Setting struct {
	Key   string `gorm:"primarykey" json:"key"`  // 配置键
	Value string `gorm:"not null" json:"value"`  // 配置值
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
