package client

import (
	"net"
	"strconv"

	"github.com/sirupsen/logrus"
	"xfrpc/pkg/config"
)

// Control 配置的下游读取者，为每个代理准备注册信息
type Control struct {
	Config    *config.Configuration
	proxies   []*config.NewProxy
	loginBody []byte
}

func NewControl(cfg *config.Configuration) *Control {
	return &Control{
		Config: cfg,
	}
}

// Prepare 生成登录消息和所有代理的 NewProxy 描述
func (c *Control) Prepare() error {
	common := c.Config.Common()
	login := c.Config.Login()
	if login.PrivilegeKey == "" {
		login.PrivilegeKey = config.AuthKey(common.AuthToken, login.Timestamp)
	}
	body, err := login.Payload()
	if err != nil {
		return err
	}
	c.loginBody = body

	serverAddr := net.JoinHostPort(common.ServerAddr, strconv.Itoa(common.ServerPort))
	c.proxies = c.proxies[:0]
	for _, pc := range c.Config.Clients() {
		np := pc.BuildNewProxy(logrus.StandardLogger())
		c.proxies = append(c.proxies, np)
		logrus.Infoln("registry service", np.ProxyType, np.ProxyName, serverAddr, net.JoinHostPort(pc.LocalIP, strconv.Itoa(pc.LocalPort)))
	}
	return nil
}

func (c *Control) Proxies() []*config.NewProxy {
	return c.proxies
}

func (c *Control) LoginBody() []byte {
	return c.loginBody
}
