// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// init enables virtual terminal processing on stdout and stderr so the escape codes
// above render as colors in a Windows console.
func init() {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		h := windows.Handle(f.Fd())

		var mode uint32
		if err := windows.GetConsoleMode(h, &mode); err != nil {
			// Not a console, e.g. redirected to a file.
			continue
		}

		_ = windows.SetConsoleMode(h, mode|windows.ENABLE_PROCESSED_OUTPUT|
			windows.ENABLE_WRAP_AT_EOL_OUTPUT|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	}
}
