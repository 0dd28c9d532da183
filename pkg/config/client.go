package config

import "github.com/sirupsen/logrus"

type ProxyType string

const (
	ProxyTypeUnset ProxyType = ""
	ProxyTypeTCP   ProxyType = "tcp"
	ProxyTypeHTTP  ProxyType = "http"
	ProxyTypeHTTPS ProxyType = "https"
	ProxyTypeUDP   ProxyType = "udp"
)

// BaseConfig 代理的公共参数
type BaseConfig struct {
	Name              string    `yaml:"name"`
	Type              ProxyType `yaml:"type,omitempty"`
	AuthToken         string    `yaml:"auth_token,omitempty"`
	PrivilegeToken    string    `yaml:"privilege_token,omitempty"`
	UseEncryption     bool      `yaml:"use_encryption"`
	UseGzip           bool      `yaml:"use_gzip"`
	PrivilegeMode     bool      `yaml:"privilege_mode"`
	PoolCount         int       `yaml:"pool_count"`
	HostHeaderRewrite string    `yaml:"host_header_rewrite,omitempty"`
	HTTPUsername      string    `yaml:"http_username,omitempty"`
	HTTPPassword      string    `yaml:"http_password,omitempty"`
	Subdomain         string    `yaml:"subdomain,omitempty"`
}

// ProxyClient 每个非 common 节对应一个，隧道生命周期使用
type ProxyClient struct {
	Base           BaseConfig `yaml:"base"`
	Name           string     `yaml:"name"`
	LocalIP        string     `yaml:"local_ip,omitempty"`
	LocalPort      int        `yaml:"local_port"`
	RemotePort     int        `yaml:"remote_port"`
	UseCompression bool       `yaml:"use_compression"`
	CustomDomains  string     `yaml:"custom_domains,omitempty"`
	Locations      string     `yaml:"locations,omitempty"`

	// NewProxy 由 BuildNewProxy 填充
	NewProxy *NewProxy `yaml:"-"`
	// DataTail 运行时附加数据，本包不读写
	DataTail []byte `yaml:"-"`
}

// newProxyClient 新建客户端并继承 common 中的 token
func newProxyClient(name string, common *CommonConfig) *ProxyClient {
	pc := &ProxyClient{
		Base:       BaseConfig{Name: name},
		Name:       name,
		LocalPort:  -1,
		RemotePort: -1,
	}
	if common != nil {
		pc.Base.AuthToken = common.AuthToken
		pc.Base.PrivilegeToken = common.PrivilegeToken
	}
	return pc
}

// NewProxy 向服务端注册代理时使用的描述
type NewProxy struct {
	ProxyName         string    `json:"proxy_name"`
	ProxyType         ProxyType `json:"proxy_type"`
	UseEncryption     bool      `json:"use_encryption"`
	UseCompression    bool      `json:"use_compression"`
	RemotePort        int       `json:"remote_port"`
	CustomDomains     string    `json:"custom_domains,omitempty"`
	Subdomain         string    `json:"subdomain,omitempty"`
	Locations         string    `json:"locations,omitempty"`
	HostHeaderRewrite string    `json:"host_header_rewrite,omitempty"`
	HTTPUser          string    `json:"http_user,omitempty"`
	HTTPPwd           string    `json:"http_pwd,omitempty"`
}

// BuildNewProxy 根据客户端配置生成 NewProxy，并写回 pc.NewProxy
func (pc *ProxyClient) BuildNewProxy(log logrus.FieldLogger) *NewProxy {
	log.Debugf("init client proxy argu: [%s]", pc.Name)
	np := &NewProxy{
		ProxyName:         pc.Name,
		ProxyType:         pc.Base.Type,
		UseEncryption:     pc.Base.UseEncryption,
		UseCompression:    pc.UseCompression,
		RemotePort:        pc.RemotePort,
		CustomDomains:     pc.CustomDomains,
		Subdomain:         pc.Base.Subdomain,
		Locations:         pc.Locations,
		HostHeaderRewrite: pc.Base.HostHeaderRewrite,
		HTTPUser:          pc.Base.HTTPUsername,
		HTTPPwd:           pc.Base.HTTPPassword,
	}
	if np.ProxyType == ProxyTypeUnset {
		log.Infof("[%s] proxy_type is empty, using tcp", pc.Name)
		np.ProxyType = ProxyTypeTCP
	}
	pc.NewProxy = np
	return np
}

func (pc ProxyClient) Masked() ProxyClient {
	pc.Base.AuthToken = mask(pc.Base.AuthToken)
	pc.Base.PrivilegeToken = mask(pc.Base.PrivilegeToken)
	pc.Base.HTTPPassword = mask(pc.Base.HTTPPassword)
	return pc
}
