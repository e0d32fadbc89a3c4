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
	"github.com/stretchr/testify/require"
)

const baallBase = "http://baall.example.org/ontology#"

func TestNamespaceRegister(t *testing.T) {
	table := NewNamespaceTable()
	require.NoError(t, table.Register("baall", baallBase))
	// same binding twice is fine
	require.NoError(t, table.Register("baall", baallBase))
	// rebinding is not
	assert.ErrorIs(t, table.Register("baall", "http://elsewhere/"), ErrInvalidDocument)
	assert.ErrorIs(t, table.Register("bad prefix", baallBase), ErrInvalidDocument)
	assert.ErrorIs(t, table.Register("empty", ""), ErrInvalidDocument)

	assert.Equal(t, []string{"baall", "owl"}, table.Prefixes())
	base, err := table.Base("baall")
	require.NoError(t, err)
	assert.Equal(t, baallBase, base)
	_, err = table.Base("q")
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func TestNamespaceExpand(t *testing.T) {
	table := NewNamespaceTable()
	require.NoError(t, table.Register("baall", baallBase))

	full, err := table.Expand("baall:Char")
	require.NoError(t, err)
	assert.Equal(t, baallBase+"Char", full)

	// owl is preregistered
	thing, err := table.Expand(ThingIRI)
	require.NoError(t, err)
	assert.Equal(t, OWLNamespace+"Thing", thing)

	// full IRIs and bare names pass through
	passthrough, err := table.Expand("http://elsewhere/X")
	require.NoError(t, err)
	assert.Equal(t, "http://elsewhere/X", passthrough)
	bare, err := table.Expand("Char")
	require.NoError(t, err)
	assert.Equal(t, "Char", bare)

	_, err = table.Expand("q:Unregistered")
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func TestNamespaceAbbreviate(t *testing.T) {
	table := NewNamespaceTable()
	require.NoError(t, table.Register("baall", baallBase))
	require.NoError(t, table.Register("baallx", baallBase+"x/"))

	assert.Equal(t, "baall:Char", table.Abbreviate(baallBase+"Char"))
	// longest base wins
	assert.Equal(t, "baallx:Y", table.Abbreviate(baallBase+"x/Y"))
	assert.Equal(t, ThingIRI, table.Abbreviate(OWLNamespace+"Thing"))
	assert.Equal(t, "http://elsewhere/X", table.Abbreviate("http://elsewhere/X"))
}

func TestNamespaceKnown(t *testing.T) {
	table := NewNamespaceTable()
	require.NoError(t, table.Register("baall", baallBase))
	assert.True(t, table.Known("baall:Char"))
	assert.True(t, table.Known(ThingIRI))
	assert.True(t, table.Known("Char"))
	assert.True(t, table.Known("http://elsewhere/X"))
	assert.False(t, table.Known("q:Char"))
}
