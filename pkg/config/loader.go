package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

type State int

const (
	Uninitialized State = iota
	DefaultsApplied
	CommonParsed
	ServicesParsed
	Ready
	ParseFailed
	CommonInvalid
	ServiceInvalid
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case DefaultsApplied:
		return "defaults_applied"
	case CommonParsed:
		return "common_parsed"
	case ServicesParsed:
		return "services_parsed"
	case Ready:
		return "ready"
	case ParseFailed:
		return "parse_failed"
	case CommonInvalid:
		return "common_invalid"
	case ServiceInvalid:
		return "service_invalid"
	}
	return "unknown"
}

// Loader 一次性加载配置，任何错误都直接返回给调用方，由调用方决定退出
type Loader struct {
	log     logrus.FieldLogger
	scanner Scanner
	host    Host
	now     func() time.Time
	state   State
}

type Option func(*Loader)

func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

func WithScanner(s Scanner) Option {
	return func(l *Loader) {
		l.scanner = s
	}
}

func WithHost(h Host) Option {
	return func(l *Loader) {
		l.host = h
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		log:     logrus.StandardLogger(),
		scanner: IniScanner{},
		host:    runtimeHost{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) State() State {
	return l.state
}

// Load 依次扫描 common、client、service，每一步失败都立即返回
func (l *Loader) Load(path string) (*Configuration, error) {
	cfg := newConfiguration(NewCommonConfig(), NewLoginInfo(l.host, l.now().Unix()), l.log)
	l.state = DefaultsApplied

	l.log.Debugf("Reading configuration file '%s'", path)
	if err := l.scan(path, cfg.commonHandler); err != nil {
		return nil, err
	}
	dumpCommon(l.log, cfg.common)
	if err := cfg.common.Validate(); err != nil {
		l.state = CommonInvalid
		l.log.Errorln(err)
		return nil, err
	}
	l.state = CommonParsed

	if err := l.scan(path, cfg.clientHandler); err != nil {
		return nil, err
	}
	if err := l.scan(path, cfg.serviceHandler); err != nil {
		return nil, err
	}
	l.state = ServicesParsed

	dumpClients(l.log, cfg.Clients())
	if err := validateServices(l.log, cfg.Services()); err != nil {
		l.state = ServiceInvalid
		l.log.Errorln(err)
		return nil, err
	}
	l.state = Ready
	return cfg, nil
}

func (l *Loader) scan(path string, h Handler) error {
	if err := l.scanner.Scan(path, h); err != nil {
		l.state = ParseFailed
		l.log.Errorln("config file parse failed", err)
		return &FileParseError{Path: path, Err: err}
	}
	return nil
}

// Load 使用默认 Loader 加载
func Load(path string, opts ...Option) (*Configuration, error) {
	return NewLoader(opts...).Load(path)
}
