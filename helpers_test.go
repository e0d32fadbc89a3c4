// The MIT License (MIT)
//
// Copyright (c) 2026 Mihai Pomarlan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package baall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUintSet(t *testing.T) {
	assert.Equal(t, "{  }", StringUintSet(nil))
	assert.Equal(t, "{ 1, 2, 7 }", StringUintSet(map[uint]struct{}{
		7: {}, 1: {}, 2: {},
	}))
}

func TestSortedStrings(t *testing.T) {
	values := []string{"c", "a", "b"}
	assert.Equal(t, []string{"a", "b", "c"}, sortedStrings(values))
	// the input stays untouched
	assert.Equal(t, []string{"c", "a", "b"}, values)
}
