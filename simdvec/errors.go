// Copyright 2025 go-simdvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simdvec

import (
	"errors"
	"fmt"
)

// ErrSizeOverflow is the cause of an AlignmentError whose requested element
// count would overflow the byte size of the allocation.
var ErrSizeOverflow = errors.New("allocation size overflows the address space")

// ConfigError indicates an invalid element/lane configuration: a lane width
// that is not a power of two, not an exact multiple of the element size, or a
// negative element count. It is returned before any storage is allocated.
type ConfigError struct {
	ElemSize  int
	LaneBytes int
	Size      int
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("simdvec: invalid configuration (elem=%dB lane=%dB size=%d): %s",
		e.ElemSize, e.LaneBytes, e.Size, e.Reason)
}

// AlignmentError indicates that an aligned storage block of the requested
// size could not be obtained. No partial allocation is retained after this
// failure.
type AlignmentError struct {
	Size  int // requested element count
	Align int
	cause error
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("simdvec: cannot allocate aligned storage for %d elements (align %d)", e.Size, e.Align)
}

func (e *AlignmentError) Unwrap() error { return e.cause }
