package config

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthKey(t *testing.T) {
	assert.Equal(t, "5e76f3ef4b055388109aa7082ecd5904", AuthKey("secret", 1495165129))
}

func TestLoginPayload(t *testing.T) {
	login := NewLoginInfo(fixedHost{}, 1495165129)
	login.PrivilegeKey = AuthKey("secret", login.Timestamp)

	body, err := login.Payload()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, map[string]interface{}{
		"version":       ProtocolVersion,
		"hostname":      "",
		"os":            "linux",
		"arch":          "amd64",
		"user":          "",
		"privilege_key": "5e76f3ef4b055388109aa7082ecd5904",
		"timestamp":     float64(1495165129),
		"run_id":        "",
		"pool_count":    float64(1),
	}, got)
}

func TestBuildNewProxy(t *testing.T) {
	log, hook := test.NewNullLogger()

	pc := newProxyClient("ssh", nil)
	pc.RemotePort = 6000
	pc.UseCompression = true
	pc.Base.UseEncryption = true
	np := pc.BuildNewProxy(log)

	assert.Same(t, np, pc.NewProxy)
	assert.Equal(t, &NewProxy{
		ProxyName:      "ssh",
		ProxyType:      ProxyTypeTCP,
		UseEncryption:  true,
		UseCompression: true,
		RemotePort:     6000,
	}, np)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "[ssh] proxy_type is empty, using tcp", hook.LastEntry().Message)

	web := newProxyClient("web", nil)
	web.Base.Type = ProxyTypeHTTPS
	web.Base.Subdomain = "web"
	assert.Equal(t, ProxyTypeHTTPS, web.BuildNewProxy(log).ProxyType)
	assert.Equal(t, "web", web.NewProxy.Subdomain)
}

func TestMasked(t *testing.T) {
	c := NewCommonConfig()
	c.AuthToken = "secret"
	m := c.Masked()
	assert.Equal(t, "******", m.AuthToken)
	assert.Empty(t, m.PrivilegeToken)
	assert.Equal(t, "secret", c.AuthToken)
	assert.NotContains(t, c.String(), "secret")
}
