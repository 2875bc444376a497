package programmer

import (
	"fmt"
	"time"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
	"github.com/AndersBNielsen/firestarter-app/internal/serialport"
)

// Programmer is the protocol client for the EPROM programmer. One command
// invocation creates a connection via Connect (directly or through an
// operation method), owns it exclusively, and closes it on every exit path.
type Programmer struct {
	settings *config.Settings
	cfg      Config
}

// New creates a programmer client. The settings context supplies the
// remembered port and receives it back after a successful handshake.
func New(settings *config.Settings, opts ...Option) *Programmer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Programmer{settings: settings, cfg: cfg}
}

// Connect finds the programmer: for each candidate port, open, wait out the
// boot settle delay, send the command envelope and wait for the first
// response. The envelope doubles as the liveness probe; an OK means the
// device accepted the command and the connection is handed to the caller
// still open. Any other response moves on to the next candidate.
func (p *Programmer) Connect(env protocol.Envelope) (*serialport.Connection, error) {
	data, err := env.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize command: %w", err)
	}
	config.Debugf("command envelope: %s", data)

	for _, port := range p.cfg.Ports(p.settings.Port) {
		config.Debugf("checking port: %s", port)
		conn, err := p.cfg.Open(port)
		if err != nil {
			config.Debugf("open %s: %v", port, err)
			continue
		}

		time.Sleep(p.cfg.SettleDelay)

		if _, err := conn.Write(data); err != nil {
			config.Debugf("write %s: %v", port, err)
			conn.Close()
			continue
		}
		if err := conn.Flush(); err != nil {
			conn.Close()
			continue
		}

		resp, err := p.WaitForResponse(conn)
		if err != nil {
			config.Debugf("handshake %s: %v", port, err)
			conn.Close()
			continue
		}
		if resp.Kind == protocol.KindOK {
			p.settings.Port = port
			if err := p.settings.Save(); err != nil {
				config.Debugf("failed to persist port: %v", err)
			}
			return conn, nil
		}

		fmt.Println(resp.Message)
		conn.Close()
	}

	return nil, ErrNoProgrammerFound
}

// WaitForResponse reads lines until a terminating tagged event arrives.
// INFO lines are surfaced on the verbose channel and restart the inactivity
// window without ending the wait; OK, WARN, ERROR and DATA end it. When no
// recognized line arrives within the window the result is a synthetic
// TIMEOUT event. Transport failures are returned as errors.
func (p *Programmer) WaitForResponse(conn *serialport.Connection) (protocol.Response, error) {
	deadline := time.Now().Add(p.cfg.ResponseWindow)
	for {
		line, err := conn.ReadLine()
		if err != nil {
			return protocol.Response{}, err
		}
		if resp, ok := protocol.ParseLine(line); ok {
			deadline = time.Now().Add(p.cfg.ResponseWindow)
			config.Debugf("%s: %s", resp.Kind, resp.Message)
			if resp.Kind == protocol.KindInfo {
				continue
			}
			return resp, nil
		}
		if time.Now().After(deadline) {
			return protocol.Response{Kind: protocol.KindTimeout, Message: "Timeout"}, nil
		}
	}
}

// reportProgress recomputes the derived progress values for one chunk and
// invokes the callback if one is configured.
func (p *Programmer) reportProgress(bytes, chunk, total int, start time.Time) {
	if p.cfg.Progress == nil {
		return
	}
	pct := 0
	if total > 0 {
		pct = bytes * 100 / total
	}
	p.cfg.Progress(Progress{
		Bytes:       bytes,
		Total:       total,
		Percentage:  pct,
		FromAddress: bytes - chunk,
		ToAddress:   bytes,
		Elapsed:     time.Since(start),
	})
}
