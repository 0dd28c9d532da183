package config

// Handler 每个键值对调用一次，返回是否处理；不会让扫描失败
type Handler func(section, key, value string) bool

// commonHandler 只处理 [common]
func (c *Configuration) commonHandler(section, key, value string) bool {
	if section != CommonSection {
		return false
	}
	cc := c.common
	switch key {
	case "server_addr":
		cc.ServerAddr = value
	case "server_port":
		cc.ServerPort = ParseInt(value)
	case "http_proxy":
		cc.HTTPProxy = value
	case "log_file":
		cc.LogFile = value
	case "log_way":
		cc.LogWay = value
	case "log_level":
		cc.LogLevel = value
	case "log_max_days":
		cc.LogMaxDays = ParseInt(value)
	case "auth_token":
		cc.AuthToken = value
	case "privilege_token":
		cc.PrivilegeToken = value
	case "heartbeat_interval":
		cc.HeartbeatInterval = ParseInt(value)
	case "heartbeat_timeout":
		cc.HeartbeatTimeout = ParseInt(value)
	case "tcp_mux":
		cc.TCPMux = ParseBool(value)
	}
	return true
}

// clientHandler 非 common 节都登记为 ProxyClient
func (c *Configuration) clientHandler(section, key, value string) bool {
	if section == CommonSection {
		return false
	}
	pc := c.FindOrCreateClient(section)
	switch key {
	case "type":
		pc.Base.Type = ParseProxyType(value)
	case "local_ip":
		pc.LocalIP = value
	case "local_port":
		pc.LocalPort = ParseInt(value)
	case "use_encryption":
		pc.Base.UseEncryption = ParseBool(value)
	case "use_gzip":
		pc.Base.UseGzip = ParseBool(value)
	case "privilege_mode":
		pc.Base.PrivilegeMode = ParseBool(value)
	case "pool_count":
		pc.Base.PoolCount = ParseInt(value)
	case "remote_port":
		pc.RemotePort = ParseInt(value)
	case "http_user":
		pc.Base.HTTPUsername = value
	case "http_pwd":
		pc.Base.HTTPPassword = value
	case "subdomain":
		pc.Base.Subdomain = value
	case "custom_domains":
		pc.CustomDomains = value
		c.log.Debugf("[%s] using custom_domains: %s", section, value)
	case "locations":
		pc.Locations = value
	case "host_header_rewrite":
		pc.Base.HostHeaderRewrite = value
	case "use_compression":
		pc.UseCompression = parseStrictBool(value)
	}
	return true
}

// serviceHandler 非 common 节都登记为 ProxyService，与 clientHandler 互不影响
func (c *Configuration) serviceHandler(section, key, value string) bool {
	if section == CommonSection {
		return false
	}
	ps := c.FindOrCreateService(section)
	switch key {
	case "type":
		ps.ProxyType = ParseProxyType(value)
	case "local_ip":
		ps.LocalIP = value
	case "local_port":
		ps.LocalPort = ParseInt(value)
	case "use_encryption":
		ps.UseEncryption = ParseBool(value)
	case "remote_port":
		ps.RemotePort = ParseInt(value)
	case "http_user":
		ps.HTTPUser = value
	case "http_pwd":
		ps.HTTPPwd = value
	case "subdomain":
		ps.Subdomain = value
	case "custom_domains":
		ps.CustomDomains = value
	case "locations":
		ps.Locations = value
	case "host_header_rewrite":
		ps.HostHeaderRewrite = value
	case "use_compression":
		ps.UseCompression = parseStrictBool(value)
	}
	return true
}
