// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadsSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  baker@gmail.com \nabcd efgh ijkl mnop\n"), &out)

	email, err := p.Email()
	require.NoError(t, err)
	assert.Equal(t, "baker@gmail.com", email)

	pw, err := p.AppPassword()
	require.NoError(t, err)
	assert.Equal(t, "abcd efgh ijkl mnop", pw)

	assert.Equal(t, EmailPrompt+"\n"+PasswordHint+"\n"+PasswordPrompt, out.String())
}

func TestPrompter_EOFIsEmptyAnswer(t *testing.T) {
	p := New(strings.NewReader("baker@gmail.com"), &bytes.Buffer{})

	email, err := p.Email()
	require.NoError(t, err)
	assert.Equal(t, "baker@gmail.com", email)

	pw, err := p.AppPassword()
	require.NoError(t, err)
	assert.Empty(t, pw)
}

func TestPrompter_CRLFInput(t *testing.T) {
	p := New(strings.NewReader("baker@gmail.com\r\npw\r\n"), &bytes.Buffer{})

	email, err := p.Email()
	require.NoError(t, err)
	assert.Equal(t, "baker@gmail.com", email)
}

func TestPrompter_SecretReader(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)
	p.readSecret = func() ([]byte, error) { return []byte(" abcd efgh ijkl mnop\r"), nil }

	pw, err := p.AppPassword()
	require.NoError(t, err)
	assert.Equal(t, "abcd efgh ijkl mnop", pw)
	assert.True(t, strings.HasSuffix(out.String(), PasswordPrompt+"\n"))

	p.readSecret = func() ([]byte, error) { return nil, errors.New("tty gone") }
	_, err = p.AppPassword()
	assert.ErrorContains(t, err, "tty gone")
}

func TestPrompter_TypedAheadPassword(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("baker@gmail.com\nabcd efgh ijkl mnop\n"), &out)
	p.readSecret = func() ([]byte, error) {
		t.Error("terminal read must not run while input is buffered")
		return nil, nil
	}

	email, err := p.Email()
	require.NoError(t, err)
	assert.Equal(t, "baker@gmail.com", email)

	pw, err := p.AppPassword()
	require.NoError(t, err)
	assert.Equal(t, "abcd efgh ijkl mnop", pw)
}

func TestPrompter_SecretReaderAfterBufferDrained(t *testing.T) {
	p := New(strings.NewReader("baker@gmail.com\n"), &bytes.Buffer{})
	calls := 0
	p.readSecret = func() ([]byte, error) {
		calls++
		return []byte("abcd efgh ijkl mnop"), nil
	}

	_, err := p.Email()
	require.NoError(t, err)
	pw, err := p.AppPassword()
	require.NoError(t, err)
	assert.Equal(t, "abcd efgh ijkl mnop", pw)
	assert.Equal(t, 1, calls)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPrompter_ReadError(t *testing.T) {
	_, err := New(failingReader{}, &bytes.Buffer{}).Email()
	assert.ErrorContains(t, err, "broken pipe")
}
