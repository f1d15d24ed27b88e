package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"zenwell-client/internal/session"
	"zenwell-client/pkg/log"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/websocket"
)

type channel struct {
	cfg     Config
	store   session.Store
	logger  log.Logger
	emitter *emitter
	subs    *subscriptionSet

	mu     sync.Mutex
	state  State
	userID string
	cancel context.CancelFunc
	sendCh chan []byte
	// gen guards against a dying session mutating state that belongs to a
	// newer Connect.
	gen uint64
}

// New creates a disconnected channel. The access credential for the
// handshake is read from the store at dial time, so reconnects always carry
// the freshest token.
func New(cfg Config, store session.Store, logger log.Logger) Channel {
	cfg.applyDefaults()
	return &channel{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		emitter: newEmitter(logger),
		subs:    newSubscriptionSet(),
	}
}

func (c *channel) Connect(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUserID
	}

	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		c.logger.Debugf(ctx, "realtime channel already up, connect is a no-op")
		return nil
	}
	c.state = StateConnecting
	c.userID = userID
	c.gen++
	gen := c.gen
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(runCtx, gen, userID)
	return nil
}

func (c *channel) OnMessage(h Handler) {
	c.emitter.add(h)
}

func (c *channel) Send(ctx context.Context, destination string, payload any) error {
	c.mu.Lock()
	connected := c.state == StateConnected
	sendCh := c.sendCh
	c.mu.Unlock()

	if !connected || sendCh == nil {
		c.logger.Errorf(ctx, "cannot send to %s: realtime channel not connected", destination)
		return ErrNotConnected
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	data, err := frame{Type: frameSend, Topic: destination, Payload: raw}.encode()
	if err != nil {
		return err
	}

	select {
	case sendCh <- data:
		return nil
	default:
		c.logger.Errorf(ctx, "cannot send to %s: outbound buffer full", destination)
		return ErrSendBufferFull
	}
}

func (c *channel) Disconnect() {
	c.mu.Lock()
	if c.state == StateDisconnected {
		c.mu.Unlock()
		return
	}
	cancel := c.cancel
	c.cancel = nil
	c.state = StateDisconnected
	c.sendCh = nil
	c.mu.Unlock()

	c.subs.clear()
	if cancel != nil {
		cancel()
	}
}

func (c *channel) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateConnected
}

func (c *channel) Subscribed(topic string) bool {
	return c.subs.active(topic)
}

// run keeps one session alive at a time, re-dialing under exponential
// backoff after transport loss. It exits on explicit Disconnect or ctx
// cancellation.
func (c *channel) run(ctx context.Context, gen uint64, userID string) {
	defer c.transition(gen, StateDisconnected)

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = c.cfg.ReconnectInitial
	retry.MaxInterval = c.cfg.ReconnectMax

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, c.runSession(ctx, gen, userID)
	},
		backoff.WithBackOff(retry),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Infof(ctx, "reconnecting realtime channel in %s: %v", next, err)
		}),
	)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		c.logger.Errorf(ctx, "realtime channel stopped: %v", err)
	}
}

// runSession dials, subscribes, and pumps messages until the transport dies.
// It returns nil on explicit disconnect so the retry loop stops, and the
// transport error otherwise so reconnection begins.
func (c *channel) runSession(ctx context.Context, gen uint64, userID string) error {
	sess, err := c.store.Get()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	endpoint := c.cfg.URL
	if sess.AccessToken != "" {
		endpoint += "?token=" + url.QueryEscape(sess.AccessToken)
	}

	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.WriteWait}
	conn, resp, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return fmt.Errorf("dial %s failed: %w", c.cfg.URL, err)
	}

	sendCh := make(chan []byte, sendBufferSize)

	c.mu.Lock()
	if ctx.Err() != nil || gen != c.gen {
		c.mu.Unlock()
		conn.Close()
		return nil
	}
	c.state = StateConnected
	c.sendCh = sendCh
	c.mu.Unlock()

	topics, err := c.subscribeTopics(sendCh, userID)
	if err != nil {
		conn.Close()
		return err
	}
	c.logger.Infof(ctx, "realtime channel connected for user %s", userID)

	sessionCtx, sessionDone := context.WithCancel(ctx)
	writeDone := make(chan struct{})
	go c.writePump(sessionCtx, conn, sendCh, topics, writeDone)

	readErr := c.readLoop(ctx, conn, userID)

	c.mu.Lock()
	if gen == c.gen && ctx.Err() == nil {
		c.state = StateConnecting
		c.sendCh = nil
	}
	c.mu.Unlock()
	c.subs.clear()

	sessionDone()
	<-writeDone
	conn.Close()

	if ctx.Err() != nil {
		c.logger.Infof(ctx, "realtime channel disconnected")
		return nil
	}
	return readErr
}

func (c *channel) subscribeTopics(sendCh chan []byte, userID string) ([]string, error) {
	topics := []string{notificationTopic(userID), bookingTopic(userID)}
	for _, topic := range topics {
		data, err := frame{Type: frameSubscribe, Topic: topic}.encode()
		if err != nil {
			return nil, err
		}
		sendCh <- data
		c.subs.add(topic)
	}
	return topics, nil
}

// readLoop owns all reads on the connection. The read deadline doubles as
// the heartbeat monitor: a missed pong expires it and kills the session.
func (c *channel) readLoop(ctx context.Context, conn *websocket.Conn, userID string) error {
	conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				c.logger.Warnf(ctx, "realtime read error for user %s: %v", userID, err)
			}
			return err
		}
		// The server may coalesce queued messages into one frame, newline
		// separated.
		for _, raw := range bytes.Split(data, []byte{'\n'}) {
			if len(bytes.TrimSpace(raw)) == 0 {
				continue
			}
			c.handleInbound(ctx, raw, userID)
		}
	}
}

func (c *channel) handleInbound(ctx context.Context, data []byte, userID string) {
	frm, err := decodeFrame(data)
	if err != nil {
		c.logger.Warnf(ctx, "dropping malformed push message: %v", err)
		return
	}
	kind, ok := kindForTopic(frm.Topic, userID)
	if !ok {
		c.logger.Warnf(ctx, "dropping message on unrecognized topic %q", frm.Topic)
		return
	}
	c.emitter.dispatch(ctx, kind, frm.Payload)
}

// writePump owns all writes on the connection: outbound sends, heartbeat
// pings, and the unsubscribe/close teardown when the session context ends.
func (c *channel) writePump(ctx context.Context, conn *websocket.Conn, sendCh <-chan []byte, topics []string, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-sendCh:
			conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Debugf(ctx, "realtime write failed: %v", err)
				conn.Close()
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}
		case <-ctx.Done():
			// Best effort teardown; on a dead transport these writes just
			// fail and the close below still runs.
			conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			for _, topic := range topics {
				if data, err := (frame{Type: frameUnsubscribe, Topic: topic}).encode(); err == nil {
					conn.WriteMessage(websocket.TextMessage, data)
				}
			}
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
			return
		}
	}
}

// transition moves the channel to state if gen still owns it.
func (c *channel) transition(gen uint64, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.state = state
	if state == StateDisconnected {
		c.sendCh = nil
	}
}
