package notify

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 30 * time.Second

// SMTPConfig points the notifier at a mail relay. Timeout bounds a whole
// delivery, from dial to QUIT.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPNotifier sends the OTP email through a relay. STARTTLS is used when
// the relay offers it and PLAIN auth when a user is configured.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier returns a notifier for cfg. A zero Timeout means 30s.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	m, err := n.newMessage(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithDialContextFunc(func(dialCtx context.Context, network, addr string) (net.Conn, error) {
			return n.dial(ctx, dialCtx, network, addr)
		}),
	}
	if n.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.User),
			mail.WithPassword(n.cfg.Password),
		)
	}

	c, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("smtp send: %w", ctx.Err())
		}
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// newMessage builds the email. Headers are MIME encoded, so a non-ASCII
// file name is safe in the subject.
func (n *SMTPNotifier) newMessage(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.RecipientEmail); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(Subject(msg))
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, Body(msg))
	return m, nil
}

// dial connects with dialCtx and ties the connection to the lifetime of
// sendCtx: it gets a deadline of cfg.Timeout and is closed as soon as
// sendCtx is done, which unblocks any pending read or write.
func (n *SMTPNotifier) dial(sendCtx, dialCtx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(dialCtx, network, addr)
	if err != nil {
		return nil, err
	}
	if err := conn.SetDeadline(time.Now().Add(n.cfg.Timeout)); err != nil {
		_ = conn.Close()
		return nil, err
	}
	stop := context.AfterFunc(sendCtx, func() { _ = conn.Close() })
	return &boundConn{Conn: conn, stop: stop}, nil
}

type boundConn struct {
	net.Conn
	stop func() bool
}

func (c *boundConn) Close() error {
	c.stop()
	return c.Conn.Close()
}
