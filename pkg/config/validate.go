package config

import (
	"strconv"

	"github.com/sanmuyan/xpkg/xnet"
	"github.com/sirupsen/logrus"
)

const validPorts = "0-65535"

// Validate 心跳间隔必须大于 0，超时不能小于间隔
func (c *CommonConfig) Validate() error {
	if c.HeartbeatInterval <= 0 {
		return &InvariantViolation{Section: CommonSection, Err: ErrHeartbeatInterval}
	}
	if c.HeartbeatTimeout < c.HeartbeatInterval {
		return &InvariantViolation{Section: CommonSection, Err: ErrHeartbeatTimeout}
	}
	return nil
}

// Validate 缺少 local_port 视为错误，未设置类型时默认 tcp
func (ps *ProxyService) Validate() error {
	if ps.LocalPort < 0 {
		return &InvariantViolation{Section: ps.ProxyName, Err: ErrLocalPortMissing}
	}
	if ps.ProxyType == ProxyTypeUnset {
		ps.ProxyType = ProxyTypeTCP
	}
	return nil
}

func dumpCommon(log logrus.FieldLogger, c *CommonConfig) {
	log.Debugf("Section[common]: %s", c)
}

// validateServices 遇到第一个非法的 service 立即返回
func validateServices(log logrus.FieldLogger, services []*ProxyService) error {
	for i, ps := range services {
		if err := ps.Validate(); err != nil {
			return err
		}
		warnPort(log, ps.ProxyName, "local_port", ps.LocalPort)
		if ps.RemotePort >= 0 {
			warnPort(log, ps.ProxyName, "remote_port", ps.RemotePort)
		}
		log.Debugf("Proxy service %d: {name:%s, local_port:%d, type:%s}", i, ps.ProxyName, ps.LocalPort, ps.ProxyType)
	}
	return nil
}

func warnPort(log logrus.FieldLogger, name, field string, port int) {
	if !xnet.IsAllowPort(validPorts, strconv.Itoa(port)) {
		log.Warnf("[%s] %s %d out of range %s", name, field, port, validPorts)
	}
}

// dumpClients 只输出，不校验
func dumpClients(log logrus.FieldLogger, clients []*ProxyClient) {
	for i, pc := range clients {
		log.Debugf("Proxy client %d: {name:%s, local_port:%d, remote_port:%d, type:%s}", i, pc.Name, pc.LocalPort, pc.RemotePort, pc.Base.Type)
	}
}
