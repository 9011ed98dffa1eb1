// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidIndent = errors.New("invalid indent")
)
