package config

import (
	"crypto/md5"
	"encoding/hex"
	"runtime"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtocolVersion 与服务端握手时上报的协议版本
const ProtocolVersion = "0.10.0"

// Host 提供宿主机信息
type Host interface {
	OS() string
	Arch() string
}

type runtimeHost struct{}

func (runtimeHost) OS() string   { return runtime.GOOS }
func (runtimeHost) Arch() string { return runtime.GOARCH }

// LoginInfo 登录握手使用的客户端身份，Logged 和 RunID 由运行时在握手成功后设置
type LoginInfo struct {
	Version      string `yaml:"version"`
	Hostname     string `yaml:"hostname,omitempty"`
	OS           string `yaml:"os"`
	Arch         string `yaml:"arch"`
	User         string `yaml:"user,omitempty"`
	Timestamp    int64  `yaml:"timestamp"`
	RunID        string `yaml:"run_id,omitempty"`
	PoolCount    int    `yaml:"pool_count"`
	PrivilegeKey string `yaml:"privilege_key,omitempty"`
	Logged       bool   `yaml:"logged"`
}

func NewLoginInfo(host Host, timestamp int64) *LoginInfo {
	return &LoginInfo{
		Version:   ProtocolVersion,
		OS:        host.OS(),
		Arch:      host.Arch(),
		Timestamp: timestamp,
		PoolCount: 1,
	}
}

// MarkLogged 握手成功后记录服务端分配的 run_id
func (l *LoginInfo) MarkLogged(runID string) {
	l.RunID = runID
	l.Logged = true
}

// AuthKey md5(token + timestamp)
func AuthKey(token string, timestamp int64) string {
	sum := md5.Sum([]byte(token + strconv.FormatInt(timestamp, 10)))
	return hex.EncodeToString(sum[:])
}

// Payload 生成登录消息体
func (l *LoginInfo) Payload() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"version":       l.Version,
		"hostname":      l.Hostname,
		"os":            l.OS,
		"arch":          l.Arch,
		"user":          l.User,
		"privilege_key": l.PrivilegeKey,
		"timestamp":     l.Timestamp,
		"run_id":        l.RunID,
		"pool_count":    l.PoolCount,
	})
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}
