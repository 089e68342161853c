package http

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-frame/internal/grammar"
	"github.com/shapestone/shape-frame/internal/lexer"
	"github.com/shapestone/shape-frame/internal/tokenizer"
)

const contentLengthHeader = "content-length"

// state is the phase a single message read is in.
type state int8

const (
	stateStartLine state = iota
	stateHeaders
	stateBody
	stateDone
	stateFailed
)

var stateNames = [...]string{
	stateStartLine: "start-line",
	stateHeaders:   "headers",
	stateBody:      "body",
	stateDone:      "done",
	stateFailed:    "failed",
}

func (s state) String() string { return stateNames[s] }

// Reader reads one HTTP/1.x message per call from a Transport. Bytes after
// the message body are left on the transport for the next call.
type Reader struct {
	t   Transport
	cfg Config
	log zerolog.Logger
}

// NewReader returns a Reader over t.
func NewReader(t Transport, cfg Config) *Reader {
	return &Reader{t: t, cfg: cfg, log: cfg.logger()}
}

// ReadRequest reads one request into a *Request.
func (r *Reader) ReadRequest() (*Request, error) {
	return ReadRequestWith(r, NewRequestBuilder())
}

// ReadResponse reads one response into a *Response.
func (r *Reader) ReadResponse() (*Response, error) {
	return ReadResponseWith(r, NewResponseBuilder())
}

// ReadRequestWith reads one request and hands its parts to b in wire order.
func ReadRequestWith[M any](r *Reader, b RequestBuilder[M]) (M, error) {
	var zero M
	p := r.begin(DirectionRequest)

	raw, err := p.readLine(KindHeaderTransport)
	if err != nil {
		return zero, err
	}
	rl, err := grammar.ParseRequestLine(raw)
	if err != nil {
		return zero, p.syntax(raw, err)
	}
	v, err := p.version(rl.Version)
	if err != nil {
		return zero, err
	}

	b.SetMethod(rl.Method)
	b.SetTarget(rl.Target)
	b.SetVersion(v)
	p.log.Debug().Str("method", rl.Method).Str("target", rl.Target).Msg("request line")

	return finish(p, b)
}

// ReadResponseWith reads one response and hands its parts to b in wire order.
func ReadResponseWith[M any](r *Reader, b ResponseBuilder[M]) (M, error) {
	var zero M
	p := r.begin(DirectionResponse)

	raw, err := p.readLine(KindHeaderTransport)
	if err != nil {
		return zero, err
	}
	rl, err := grammar.ParseResponseLine(raw)
	if err != nil {
		return zero, p.syntax(raw, err)
	}
	v, err := p.version(rl.Version)
	if err != nil {
		return zero, err
	}
	code, err := strconv.Atoi(rl.StatusCode)
	if err != nil {
		return zero, p.fail(&ParseError{Kind: KindMalformed, Message: grammar.ReasonStatus, Line: p.line, Err: err})
	}

	b.SetStatus(code)
	b.SetVersion(v)
	p.log.Debug().Int("status", code).Msg("status line")

	return finish(p, b)
}

// parse is the state of one message read. It is owned by a single call.
type parse struct {
	r     *Reader
	log   zerolog.Logger
	dir   Direction
	state state
	line  int

	contentLength int64
	haveLength    bool
}

func (r *Reader) begin(dir Direction) *parse {
	return &parse{
		r:     r,
		log:   r.log.With().Str("direction", dir.String()).Logger(),
		dir:   dir,
		state: stateStartLine,
	}
}

func finish[M any](p *parse, b MessageBuilder[M]) (M, error) {
	var zero M
	if err := p.headers(b.AddHeader); err != nil {
		return zero, err
	}
	body, err := p.body()
	if err != nil {
		return zero, err
	}
	msg, err := b.SetBody(body)
	if err != nil {
		return zero, p.fail(&ParseError{Kind: KindBuilderRejection, Message: err.Error(), Err: err})
	}
	p.state = stateDone
	p.log.Debug().Int("lines", p.line).Int("body", len(body)).Msg("message read")
	return msg, nil
}

// headers consumes header lines up to the blank line, passing each to add.
func (p *parse) headers(add func(key, value string)) error {
	p.state = stateHeaders
	count := 0
	for {
		raw, err := p.readLine(KindHeaderTransport)
		if err != nil {
			return err
		}
		h, end, err := grammar.ParseHeaderLine(raw, p.r.cfg.HeaderValueCharset)
		if err != nil {
			return p.syntax(raw, err)
		}
		if end {
			p.log.Debug().Int("headers", count).Int64("content_length", p.contentLength).Msg("headers read")
			return nil
		}

		count++
		if limit := p.r.cfg.MaxHeaders; limit > 0 && count > limit {
			return p.fail(newParseError(KindMalformed, fmt.Sprintf("too many headers (limit %d)", limit), p.line))
		}
		if strings.EqualFold(h.Key, contentLengthHeader) {
			if err := p.setContentLength(h.Value); err != nil {
				return err
			}
		}
		add(h.Key, h.Value)
	}
}

func (p *parse) setContentLength(value string) error {
	invalid := func(msg string, cause error) error {
		return p.fail(&ParseError{Kind: KindInvalidContentLength, Message: msg, Line: p.line, Err: cause})
	}

	if _, rest, err := lexer.Digits(uf.S2B(value)); err != nil || len(rest) != 0 {
		return invalid(fmt.Sprintf("invalid Content-Length: %q", value), err)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n > math.MaxInt {
		return invalid(fmt.Sprintf("Content-Length out of range: %s", value), err)
	}
	if p.haveLength && n != p.contentLength {
		return invalid(fmt.Sprintf("conflicting Content-Length values %d and %d", p.contentLength, n), nil)
	}
	if limit := p.r.cfg.MaxBodyBytes; limit > 0 && n > limit {
		return invalid(fmt.Sprintf("Content-Length %d exceeds limit %d", n, limit), nil)
	}
	p.contentLength = n
	p.haveLength = true
	return nil
}

// body reads exactly contentLength bytes.
func (p *parse) body() ([]byte, error) {
	p.state = stateBody
	if p.contentLength == 0 {
		return nil, nil
	}
	body, err := p.r.t.ReadExact(int(p.contentLength))
	if err != nil {
		return nil, p.fail(&ParseError{
			Kind:    KindBodyTransport,
			Message: fmt.Sprintf("reading %d byte body: %v", p.contentLength, err),
			Err:     err,
		})
	}
	return body, nil
}

func (p *parse) readLine(kind Kind) ([]byte, error) {
	raw, err := p.r.t.ReadLine()
	if err != nil {
		if errors.Is(err, ErrLineTooLong) {
			return nil, p.fail(&ParseError{Kind: KindMalformed, Message: err.Error(), Line: p.line + 1, Err: err})
		}
		return nil, p.fail(&ParseError{
			Kind:    kind,
			Message: fmt.Sprintf("reading %s: %v", p.state, err),
			Line:    p.line + 1,
			Err:     err,
		})
	}
	p.line++
	return raw, nil
}

func (p *parse) version(raw string) (Version, error) {
	v, err := grammar.ResolveVersion(raw)
	if err == nil {
		return v, nil
	}
	kind := KindMalformed
	var ve *grammar.VersionError
	if errors.As(err, &ve) && ve.Known {
		kind = KindUnsupportedVersion
	}
	return v, p.fail(&ParseError{Kind: kind, Message: err.Error(), Line: p.line, Err: err})
}

func (p *parse) syntax(raw []byte, err error) error {
	pe := &ParseError{Kind: KindMalformed, Message: err.Error(), Line: p.line, Err: err}
	var se *grammar.SyntaxError
	if errors.As(err, &se) {
		pe.Message = se.Reason
		pe.Position = se.Offset
	}
	if e := p.log.Debug(); e.Enabled() {
		e.Str("tokens", tokenizer.Describe(string(raw))).Int("line", p.line).Msg("rejected line")
	}
	return p.fail(pe)
}

func (p *parse) fail(pe *ParseError) error {
	pe.Direction = p.dir
	ev := p.log.Debug()
	if pe.Kind == KindBuilderRejection {
		ev = p.log.Warn()
	}
	ev.Str("state", p.state.String()).
		Str("kind", pe.Kind.String()).
		Int("line", pe.Line).
		Int("status", pe.StatusCode()).
		Msg(pe.Message)
	p.state = stateFailed
	return pe
}
