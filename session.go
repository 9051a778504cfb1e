package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import (
	"bytes"
	"context"
	"errors"
	"net"
	"syscall"
	"time"
)

// KeyForm selects how an AuthSpec/PrivSpec's Key bytes should be turned
// into a usable localized key: a password to run through the
// password-to-key and localization passes, an already-computed master
// key that only needs localizing, or an already-localized key used
// as-is.
type KeyForm byte

const (
	KeyFormPassword KeyForm = iota
	KeyFormMaster
	KeyFormLocalized
)

// AuthSpec is the caller-supplied authentication configuration for a v3
// session, before the engine-id needed to localize it is known.
type AuthSpec struct {
	Protocol AuthProtocol
	Form     KeyForm
	Key      []byte
}

// PrivSpec is the caller-supplied privacy configuration for a v3
// session, before localization.
type PrivSpec struct {
	Protocol PrivProtocol
	Form     KeyForm
	Key      []byte
}

// SessionConfig collects the options a Dial call can be customized
// with. Zero values select the documented defaults.
type SessionConfig struct {
	version Version

	community []byte

	engineID    []byte
	userName    []byte
	auth        *AuthSpec
	priv        *PrivSpec
	contextName []byte

	tos            byte
	sendBufferSize int
	recvBufferSize int
	timeout        time.Duration

	logger Logger
	pool   *BufferPool
}

// Option configures a SessionConfig. Apply in order; later options
// override earlier ones for the same field.
type Option func(*SessionConfig)

func WithVersion(v Version) Option { return func(c *SessionConfig) { c.version = v } }

// WithCommunity configures a v1/v2c session.
func WithCommunity(community string) Option {
	return func(c *SessionConfig) {
		c.version = Version2c
		c.community = []byte(community)
	}
}

// WithUsm configures a v3 session. engineID may be empty to request
// discovery on the first exchange (typically performed with Refresh).
func WithUsm(engineID []byte, userName string, auth *AuthSpec, priv *PrivSpec) Option {
	return func(c *SessionConfig) {
		c.version = Version3
		c.engineID = engineID
		c.userName = []byte(userName)
		c.auth = auth
		c.priv = priv
	}
}

func WithContextName(name string) Option {
	return func(c *SessionConfig) { c.contextName = []byte(name) }
}

func WithTimeout(d time.Duration) Option { return func(c *SessionConfig) { c.timeout = d } }
func WithTOS(tos byte) Option            { return func(c *SessionConfig) { c.tos = tos } }
func WithSendBufferSize(n int) Option    { return func(c *SessionConfig) { c.sendBufferSize = n } }
func WithRecvBufferSize(n int) Option    { return func(c *SessionConfig) { c.recvBufferSize = n } }
func WithLogger(l Logger) Option         { return func(c *SessionConfig) { c.logger = l } }
func WithBufferPool(p *BufferPool) Option { return func(c *SessionConfig) { c.pool = p } }

// packetConn is the subset of *net.UDPConn a Session drives. Narrowing
// to an interface lets tests substitute a mock socket for the send/
// receive loop without opening a real UDP connection.
type packetConn interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	SetReadDeadline(t time.Time) error
	Close() error
}

// Session owns a connected UDP socket and the per-peer state (community
// or USM credentials, the PDU request-id generator, and for v3 the
// msg-id generator and engine parameters) needed to carry out one
// operation at a time against a single agent.
type Session struct {
	conn    packetConn
	version Version
	logger  Logger
	pool    *BufferPool

	community []byte

	engineID        []byte
	engineBoots     int32
	engineTime      int32
	userName        []byte
	contextEngineID []byte
	contextName     []byte
	authSpec        *AuthSpec
	privSpec        *PrivSpec
	auth            *AuthKey
	priv            *PrivKey

	reqID *idGenerator
	msgID *idGenerator

	timeout time.Duration

	outstandingReqID int32
	outstandingMsgID int32

	recvBuf [bufferCapacity]byte
}

// Dial resolves addr (host:port, defaulting to port 161 when addr names
// no port) and opens a connected UDP socket configured per opts.
func Dial(ctx context.Context, addr string, opts ...Option) (*Session, error) {
	cfg := SessionConfig{
		version: Version2c,
		timeout: 5 * time.Second,
		logger:  discardLogger{},
		pool:    defaultBufferPool,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	raddr, err := net.ResolveUDPAddr("udp", withDefaultPort(addr))
	if err != nil {
		return nil, wrapErr(KindSocketError, "resolve address", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", raddr.String())
	if err != nil {
		return nil, wrapErr(KindSocketError, "dial", err)
	}
	udpConn, ok := conn.(*net.UDPConn)
	if !ok {
		conn.Close()
		return nil, newErr(KindSocketError, "dial did not return a UDP connection")
	}

	if err := applySocketOptions(udpConn, cfg.tos, cfg.sendBufferSize, cfg.recvBufferSize); err != nil {
		udpConn.Close()
		return nil, err
	}

	s := &Session{
		conn:            udpConn,
		version:         cfg.version,
		logger:          cfg.logger,
		pool:            cfg.pool,
		community:       cfg.community,
		engineID:        cfg.engineID,
		userName:        cfg.userName,
		contextEngineID: cfg.engineID,
		contextName:     cfg.contextName,
		authSpec:        cfg.auth,
		privSpec:        cfg.priv,
		reqID:           newIDGenerator(),
		msgID:           newIDGenerator(),
		timeout:         cfg.timeout,
	}

	if s.version == Version3 && len(s.engineID) != 0 {
		if err := s.resolveKeys(); err != nil {
			udpConn.Close()
			return nil, err
		}
	}

	return s, nil
}

func withDefaultPort(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, "161")
}

// Close releases the session's socket. A Session must not be used after
// Close returns.
func (s *Session) Close() error {
	return s.conn.Close()
}

// resolveKeys localizes authSpec/privSpec against the now-known
// engine-id, called once the engine-id is configured or learned via
// discovery.
func (s *Session) resolveKeys() error {
	if s.authSpec != nil && s.authSpec.Protocol != AuthNone {
		key, err := resolveAuth(s.authSpec, s.engineID)
		if err != nil {
			return err
		}
		s.auth = key
	}
	if s.privSpec != nil && s.privSpec.Protocol != PrivNone {
		key, err := resolvePriv(s.privSpec, s.engineID)
		if err != nil {
			return err
		}
		s.priv = key
	}
	return nil
}

func resolveAuth(spec *AuthSpec, engineID []byte) (*AuthKey, error) {
	switch spec.Form {
	case KeyFormPassword:
		return DeriveAuthKey(spec.Protocol, string(spec.Key), engineID), nil
	case KeyFormMaster:
		return NewAuthKey(spec.Protocol, MasterToLocalized(spec.Protocol, spec.Key, engineID))
	case KeyFormLocalized:
		return NewAuthKey(spec.Protocol, spec.Key)
	default:
		return nil, newErr(KindInvalidKey, "unknown auth key form")
	}
}

func resolvePriv(spec *PrivSpec, engineID []byte) (*PrivKey, error) {
	switch spec.Form {
	case KeyFormPassword:
		master := PasswordToMaster(privAuthProtocolHint(spec.Protocol), string(spec.Key))
		return NewPrivKey(spec.Protocol, MasterToLocalized(privAuthProtocolHint(spec.Protocol), master, engineID))
	case KeyFormMaster:
		return NewPrivKey(spec.Protocol, MasterToLocalized(privAuthProtocolHint(spec.Protocol), spec.Key, engineID))
	case KeyFormLocalized:
		return NewPrivKey(spec.Protocol, spec.Key)
	default:
		return nil, newErr(KindInvalidKey, "unknown priv key form")
	}
}

// privAuthProtocolHint picks the hash used to localize a privacy
// password/master key: always MD5, whose 16-byte digest matches the
// 16-byte DES and AES-128 key size. The session's authentication
// protocol is not consulted, so a privacy key is never localized with
// SHA-1, even on a session that authenticates with SHA-1.
func privAuthProtocolHint(PrivProtocol) AuthProtocol {
	return AuthMD5
}

// send serializes pdu under the session's version/credentials and
// writes it as one datagram, recording the outstanding request-id (and,
// for v3, msg-id) the receive loop will match against.
func (s *Session) send(pdu Pdu) error {
	handle := s.pool.Acquire()
	defer handle.Release()
	buf := handle.Buf()

	requestID := s.reqID.Next()
	pdu.RequestID = requestID

	if s.version == Version3 {
		msgID := s.msgID.Next()
		m := V3Message{
			MsgID:           msgID,
			Reportable:      true,
			ContextEngineID: s.contextEngineID,
			ContextName:     s.contextName,
			EngineID:        s.engineID,
			EngineBoots:     s.engineBoots,
			EngineTime:      s.engineTime,
			UserName:        s.userName,
			Auth:            s.auth,
			Priv:            s.priv,
			Pdu:             pdu,
		}
		if err := EncodeV3Message(buf, m); err != nil {
			return err
		}
		s.outstandingMsgID = msgID
	} else {
		if err := encodeV1Message(buf, s.version, s.community, pdu); err != nil {
			return err
		}
	}

	if _, err := s.conn.Write(buf.Data()); err != nil {
		return classifySocketError(err)
	}
	s.outstandingReqID = requestID
	s.logger.Printf("sent request-id %d (%d bytes)", requestID, buf.Len())
	return nil
}

// receive reads datagrams until one validates against the outstanding
// request, per spec.md §4.8's send/receive loop: mismatched
// version/community/user/engine-id/msg-id datagrams are silently
// dropped rather than surfaced as errors. Report PDUs always validate
// (their request-id is not checked) and are returned to the caller to
// interpret.
func (s *Session) receive() (Pdu, error) {
	for {
		dgram, err := s.readDatagram()
		if err != nil {
			return Pdu{}, err
		}
		pdu, ok, err := s.decodeAndValidate(dgram)
		if err != nil {
			return Pdu{}, err
		}
		if !ok {
			s.logger.Printf("discarding %d-byte datagram that failed validation", len(dgram))
			continue
		}
		return pdu, nil
	}
}

func (s *Session) readDatagram() ([]byte, error) {
	if s.timeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.timeout)); err != nil {
			return nil, wrapErr(KindSocketError, "set read deadline", err)
		}
	} else {
		if err := s.conn.SetReadDeadline(time.Time{}); err != nil {
			return nil, wrapErr(KindSocketError, "clear read deadline", err)
		}
	}

	n, err := s.conn.Read(s.recvBuf[:])
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, newErr(KindWouldBlock, "read timed out")
		}
		return nil, classifySocketError(err)
	}
	return s.recvBuf[:n], nil
}

func (s *Session) decodeAndValidate(dgram []byte) (Pdu, bool, error) {
	if s.version == Version3 {
		return s.decodeAndValidateV3(dgram)
	}
	return s.decodeAndValidateV1(dgram)
}

func (s *Session) decodeAndValidateV1(dgram []byte) (Pdu, bool, error) {
	community, pdu, versionMatches, err := decodeV1Message(dgram, s.version)
	if err != nil {
		return Pdu{}, false, err
	}
	if !versionMatches {
		return Pdu{}, false, nil
	}
	if !bytes.Equal(community, s.community) {
		return Pdu{}, false, nil
	}
	if pdu.Variant != PDUReport && pdu.RequestID != s.outstandingReqID {
		return Pdu{}, false, nil
	}
	return pdu, true, nil
}

func (s *Session) decodeAndValidateV3(dgram []byte) (Pdu, bool, error) {
	dec, err := decodeV3Message(dgram)
	if err != nil {
		var verErr *Error
		if errors.As(err, &verErr) && verErr.Kind == KindInvalidVersion && Version(verErr.Version).valid() {
			return Pdu{}, false, nil
		}
		return Pdu{}, false, err
	}
	if dec.MsgID != s.outstandingMsgID {
		return Pdu{}, false, nil
	}
	if !bytes.Equal(dec.Usm.UserName, s.userName) {
		return Pdu{}, false, nil
	}
	if len(s.engineID) != 0 && !bytes.Equal(dec.Usm.EngineID, s.engineID) {
		return Pdu{}, false, nil
	}

	if s.auth != nil && s.auth.Protocol != AuthNone {
		if !s.auth.Verify(dgram, dec.AuthOffset, dec.Usm.AuthenticationParameters) {
			return Pdu{}, false, nil
		}
	}

	var pdu Pdu
	if dec.IsEncrypted() {
		if s.priv == nil || s.priv.Protocol == PrivNone {
			return Pdu{}, false, newErr(KindInvalidData, "received encrypted message without a configured privacy key")
		}
		plaintext, err := s.priv.Decrypt(dec.Usm.EngineBoots, dec.Usm.EngineTime, dec.Usm.PrivacyParameters, dec.EncryptedMsgData())
		if err != nil {
			return Pdu{}, false, err
		}
		_, _, decryptedPdu, err := decodeScopedPdu(plaintext)
		if err != nil {
			return Pdu{}, false, err
		}
		pdu = decryptedPdu
	} else {
		pdu = dec.Pdu
	}

	if len(s.engineID) == 0 {
		s.engineID = append([]byte(nil), dec.Usm.EngineID...)
		s.contextEngineID = s.engineID
		if err := s.resolveKeys(); err != nil {
			return Pdu{}, false, err
		}
	}
	s.engineBoots = dec.Usm.EngineBoots
	s.engineTime = dec.Usm.EngineTime

	if pdu.Variant != PDUReport && pdu.RequestID != s.outstandingReqID {
		return Pdu{}, false, nil
	}
	return pdu, true, nil
}

func classifySocketError(err error) error {
	if errors.Is(err, net.ErrClosed) {
		return wrapErr(KindSocketError, "connection closed", err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return wrapErr(KindConnectionRefused, "", err)
	}
	return wrapErr(KindSocketError, "", err)
}
