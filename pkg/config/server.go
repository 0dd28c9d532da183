package config

import "fmt"

const (
	defaultServerAddr        = "0.0.0.0"
	defaultServerPort        = 7000
	defaultLogFile           = "console"
	defaultLogWay            = "console"
	defaultLogLevel          = "info"
	defaultLogMaxDays        = 3
	defaultHeartbeatInterval = 10
	defaultHeartbeatTimeout  = 30
)

// CommonSection 保留的公共节名，不会生成代理条目
const CommonSection = "common"

// CommonConfig [common] 节，描述与服务端的连接参数
type CommonConfig struct {
	ServerAddr        string `yaml:"server_addr"`
	ServerPort        int    `yaml:"server_port"`
	HTTPProxy         string `yaml:"http_proxy,omitempty"`
	LogFile           string `yaml:"log_file"`
	LogWay            string `yaml:"log_way"`
	LogLevel          string `yaml:"log_level"`
	LogMaxDays        int    `yaml:"log_max_days"`
	AuthToken         string `yaml:"auth_token,omitempty"`
	PrivilegeToken    string `yaml:"privilege_token,omitempty"`
	HeartbeatInterval int    `yaml:"heartbeat_interval"`
	HeartbeatTimeout  int    `yaml:"heartbeat_timeout"`
	TCPMux            bool   `yaml:"tcp_mux"`
}

func NewCommonConfig() *CommonConfig {
	return &CommonConfig{
		ServerAddr:        defaultServerAddr,
		ServerPort:        defaultServerPort,
		LogFile:           defaultLogFile,
		LogWay:            defaultLogWay,
		LogLevel:          defaultLogLevel,
		LogMaxDays:        defaultLogMaxDays,
		HeartbeatInterval: defaultHeartbeatInterval,
		HeartbeatTimeout:  defaultHeartbeatTimeout,
	}
}

// Masked 返回隐藏了密钥的副本，用于日志和 dump
func (c CommonConfig) Masked() CommonConfig {
	c.AuthToken = mask(c.AuthToken)
	c.PrivilegeToken = mask(c.PrivilegeToken)
	return c
}

func (c *CommonConfig) String() string {
	m := c.Masked()
	return fmt.Sprintf("{server_addr:%s, server_port:%d, auth_token:%s, privilege_token:%s, interval:%d, timeout:%d}",
		m.ServerAddr, m.ServerPort, m.AuthToken, m.PrivilegeToken, m.HeartbeatInterval, m.HeartbeatTimeout)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "******"
}
