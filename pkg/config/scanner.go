package config

import "gopkg.in/ini.v1"

// Scanner 逐个键值对回调 Handler
type Scanner interface {
	Scan(path string, h Handler) error
}

// IniScanner 基于 gopkg.in/ini.v1，按文件顺序遍历节和键
type IniScanner struct{}

func (IniScanner) Scan(path string, h Handler) error {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return err
	}
	for _, section := range f.Sections() {
		name := section.Name()
		// 不在任何节下的键
		if name == ini.DefaultSection {
			name = ""
		}
		for _, key := range section.Keys() {
			h(name, key.Name(), key.Value())
		}
	}
	return nil
}
