// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Parser deconstructs URL-like strings into their components. It recognizes, left to right,
// the scheme, the credentials, the network location (IPv6, IPv4 or domain name), the path and
// the CGI parameters with the anchor. Each step consumes a prefix of what the previous steps
// left; a step that does not match leaves the input untouched and the next step runs on the
// same input. Parsing never fails, it returns whatever was recognized.
//
// A Parser is safe for concurrent use by multiple goroutines. A [State] is not.
type Parser struct {
	logger   *slog.Logger
	unescape func(string) string
	cache    *lru.Cache[string, *Result]
}

type step struct {
	name      string
	recognize Recognizer
}

var pipeline = [...]step{
	{"scheme", RecognizeScheme},
	{"credential", RecognizeCredential},
	{"host", RecognizeHost},
	{"path", RecognizePath},
	{"cgi", RecognizeQuery},
}

// New returns a ready to use Parser.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		logger:   slog.New(slog.DiscardHandler),
		unescape: Unescape,
	}

	for _, opt := range opts {
		if err := opt.apply(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// MustNew is a convenience wrapper for [New] that panics on error.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse deconstructs input in a fresh [State] and returns the result. The result is owned
// by the caller.
func (p *Parser) Parse(input string) *Result {
	if p.cache != nil {
		if res, ok := p.cache.Get(input); ok {
			return res.Clone()
		}
	}

	var st State
	res := p.ParseState(&st, input)
	if p.cache != nil {
		p.cache.Add(input, res.Clone())
	}
	return res
}

// ParseState deconstructs input into st and returns st's accumulated result. Components
// recognized by an earlier call on the same st are kept unless this call recognizes them
// again, so st must be [State.Reset] between unrelated inputs.
func (p *Parser) ParseState(st *State, input string) *Result {
	res := st.Result()
	res.InputURL = input

	clean := p.unescape(input)
	if clean != input {
		res.CleanURL = clean
	}
	st.remainder = clean

	ctx := context.Background()
	debug := p.logger.Enabled(ctx, slog.LevelDebug)
	for _, s := range pipeline {
		m, ok := s.recognize(st.remainder)
		if ok {
			st.apply(m)
		}

		if debug {
			attrs := []slog.Attr{slog.String("step", s.name), slog.Bool("matched", ok)}
			if ok {
				attrs = append(attrs, slog.String("component", m.Fragment.Component().String()))
			}
			attrs = append(attrs, slog.String("remainder", st.remainder))
			p.logger.LogAttrs(ctx, slog.LevelDebug, "recognizer", attrs...)
		}
	}

	return res
}
