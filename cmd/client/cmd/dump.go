package cmd

import (
	"gopkg.in/yaml.v3"
	"xfrpc/pkg/config"
)

type dumpDoc struct {
	Common   config.CommonConfig   `yaml:"common"`
	Login    config.LoginInfo      `yaml:"login"`
	Clients  []config.ProxyClient  `yaml:"clients"`
	Services []config.ProxyService `yaml:"services"`
}

// dump 密钥字段会被隐藏
func dump(cfg *config.Configuration) ([]byte, error) {
	doc := dumpDoc{
		Common: cfg.Common().Masked(),
		Login:  *cfg.Login(),
	}
	for _, pc := range cfg.Clients() {
		doc.Clients = append(doc.Clients, pc.Masked())
	}
	for _, ps := range cfg.Services() {
		doc.Services = append(doc.Services, ps.Masked())
	}
	return yaml.Marshal(doc)
}
