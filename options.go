// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tigerwill90/urld/internal/slogpretty"
)

// Option configures a [Parser].
type Option interface {
	apply(*Parser) error
}

type optionFunc func(*Parser) error

func (o optionFunc) apply(p *Parser) error {
	return o(p)
}

// WithLogHandler configures the parser to report every pipeline step to handler at
// [slog.LevelDebug], with the step name, whether it matched and the remaining input.
func WithLogHandler(handler slog.Handler) Option {
	return optionFunc(func(p *Parser) error {
		if handler == nil {
			return fmt.Errorf("%w: nil log handler", ErrInvalidConfig)
		}
		p.logger = slog.New(handler)
		return nil
	})
}

// WithPrettyLogs configures the parser with human-readable, colorized logging optimized for
// terminal output. This option prioritizes readability over performance.
func WithPrettyLogs() Option {
	return WithLogHandler(slogpretty.DefaultHandler)
}

// WithCache keeps the results of the size most recently parsed inputs. Results are copied
// in and out of the cache, callers may modify what [Parser.Parse] returns. The cache is keyed
// by the raw input and only serves [Parser.Parse].
func WithCache(size int) Option {
	return optionFunc(func(p *Parser) error {
		cache, err := lru.New[string, *Result](size)
		if err != nil {
			return fmt.Errorf("%w: cache size %d: %w", ErrInvalidConfig, size, err)
		}
		p.cache = cache
		return nil
	})
}

// WithUnescapeFunc replaces the function that decodes the input before it is recognized.
// The default is [Unescape].
func WithUnescapeFunc(fn func(s string) string) Option {
	return optionFunc(func(p *Parser) error {
		if fn == nil {
			return fmt.Errorf("%w: nil unescape function", ErrInvalidConfig)
		}
		p.unescape = fn
		return nil
	})
}
