package config

// ProxyService 与 ProxyClient 来自同一节，但独立登记，供服务描述使用
type ProxyService struct {
	ProxyName         string    `yaml:"proxy_name"`
	ProxyType         ProxyType `yaml:"proxy_type"`
	LocalIP           string    `yaml:"local_ip,omitempty"`
	LocalPort         int       `yaml:"local_port"`
	RemotePort        int       `yaml:"remote_port"`
	UseEncryption     bool      `yaml:"use_encryption"`
	UseCompression    bool      `yaml:"use_compression"`
	CustomDomains     string    `yaml:"custom_domains,omitempty"`
	Subdomain         string    `yaml:"subdomain,omitempty"`
	Locations         string    `yaml:"locations,omitempty"`
	HostHeaderRewrite string    `yaml:"host_header_rewrite,omitempty"`
	HTTPUser          string    `yaml:"http_user,omitempty"`
	HTTPPwd           string    `yaml:"http_pwd,omitempty"`
}

func newProxyService(name string) *ProxyService {
	return &ProxyService{
		ProxyName:  name,
		LocalPort:  -1,
		RemotePort: -1,
	}
}

func (ps ProxyService) Masked() ProxyService {
	ps.HTTPPwd = mask(ps.HTTPPwd)
	return ps
}
