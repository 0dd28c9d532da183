package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"xfrpc/pkg/config"
)

func TestControlPrepare(t *testing.T) {
	name := filepath.Join(t.TempDir(), "xfrpc.ini")
	require.NoError(t, os.WriteFile(name, []byte(`[common]
auth_token = secret
[ssh]
local_ip = 127.0.0.1
local_port = 22
remote_port = 6000
[web]
type = http
local_port = 80
custom_domains = a.example.com
`), 0o644))
	cfg, err := config.Load(name)
	require.NoError(t, err)

	c := NewControl(cfg)
	require.NoError(t, c.Prepare())

	proxies := c.Proxies()
	require.Len(t, proxies, 2)
	assert.Equal(t, "ssh", proxies[0].ProxyName)
	assert.Equal(t, config.ProxyTypeTCP, proxies[0].ProxyType)
	assert.Equal(t, 6000, proxies[0].RemotePort)
	assert.Equal(t, "web", proxies[1].ProxyName)
	assert.Equal(t, config.ProxyTypeHTTP, proxies[1].ProxyType)
	assert.Equal(t, "a.example.com", proxies[1].CustomDomains)

	for _, pc := range cfg.Clients() {
		assert.NotNil(t, pc.NewProxy)
	}

	login := cfg.Login()
	assert.Equal(t, config.AuthKey("secret", login.Timestamp), login.PrivilegeKey)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(c.LoginBody(), &body))
	assert.Equal(t, login.PrivilegeKey, body["privilege_key"])
}
