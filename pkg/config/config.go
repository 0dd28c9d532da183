package config

import "github.com/sirupsen/logrus"

// Configuration 加载完成后的完整配置，由 Loader 创建后交给运行时只读使用
type Configuration struct {
	common   *CommonConfig
	login    *LoginInfo
	clients  *registry[ProxyClient]
	services *registry[ProxyService]
	log      logrus.FieldLogger
}

func newConfiguration(common *CommonConfig, login *LoginInfo, log logrus.FieldLogger) *Configuration {
	return &Configuration{
		common:   common,
		login:    login,
		clients:  newRegistry[ProxyClient](),
		services: newRegistry[ProxyService](),
		log:      log,
	}
}

func (c *Configuration) Common() *CommonConfig {
	return c.common
}

func (c *Configuration) Login() *LoginInfo {
	return c.login
}

func (c *Configuration) RunID() (string, error) {
	if c.login == nil {
		return "", ErrLoginNotInitialized
	}
	return c.login.RunID, nil
}

func (c *Configuration) IsLogged() bool {
	return c.login != nil && c.login.Logged
}

// FindOrCreateClient 新建的客户端会继承 common 中的 token
func (c *Configuration) FindOrCreateClient(name string) *ProxyClient {
	pc, created := c.clients.findOrCreate(name, func(name string) *ProxyClient {
		return newProxyClient(name, c.common)
	})
	if created {
		c.log.Debugf("init proxy client [%s]", name)
	}
	return pc
}

func (c *Configuration) FindOrCreateService(name string) *ProxyService {
	ps, _ := c.services.findOrCreate(name, newProxyService)
	return ps
}

func (c *Configuration) Client(name string) (*ProxyClient, bool) {
	return c.clients.get(name)
}

func (c *Configuration) Service(name string) (*ProxyService, bool) {
	return c.services.get(name)
}

// Clients 按节出现顺序返回
func (c *Configuration) Clients() []*ProxyClient {
	return c.clients.all()
}

// Services 按节出现顺序返回
func (c *Configuration) Services() []*ProxyService {
	return c.services.all()
}
