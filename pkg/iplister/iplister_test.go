package iplister

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockReader struct {
	count  int
	closed bool
	ret    string
	err    error
}

type mockReadCloser struct {
	io.Reader
	parent *mockReader
}

func (m *mockReadCloser) Close() error {
	m.parent.closed = true
	return nil
}

func (m *mockReader) Data(ctx context.Context) (io.ReadCloser, error) {
	m.count++
	if m.err != nil {
		return nil, m.err
	}
	return &mockReadCloser{Reader: strings.NewReader(m.ret), parent: m}, nil
}

type mockDecoder struct {
	count int
	ret   []string
	err   error
}

func (m *mockDecoder) Decode(data io.ReadCloser) ([]string, error) {
	m.count++
	return m.ret, m.err
}

type deadlineReader struct {
	hasDeadline bool
}

func (d *deadlineReader) Data(ctx context.Context) (io.ReadCloser, error) {
	_, d.hasDeadline = ctx.Deadline()
	return io.NopCloser(strings.NewReader("")), nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	i := New(&mockReader{}, &mockDecoder{})
	assert.Equal(t, time.Duration(0), i.timeout)
	assert.False(t, i.validate)
	assert.NotNil(t, i.log)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	fakeTimeout := time.Second * 123
	log := zap.NewExample()

	i := New(&mockReader{}, &mockDecoder{}, WithTimeout(fakeTimeout), WithValidation(true), WithLogger(log))
	assert.Equal(t, fakeTimeout, i.timeout)
	assert.True(t, i.validate)
	assert.Same(t, log, i.log)

	i = New(&mockReader{}, &mockDecoder{}, WithLogger(nil))
	assert.NotNil(t, i.log)
}

func TestGetIPs(t *testing.T) {
	t.Parallel()

	fakeData := "1.2.3.4/32"

	mockReader := &mockReader{
		ret: fakeData,
		err: nil,
	}
	mockDecoder := &mockDecoder{
		ret: []string{fakeData},
		err: nil,
	}

	i := New(mockReader, mockDecoder)

	res, err := i.GetIPs(context.Background())
	assert.NoError(t, err)

	assert.Len(t, res, 1)
	assert.Equal(t, fakeData, res[0])

	assert.Equal(t, 1, mockReader.count)
	assert.Equal(t, 1, mockDecoder.count)
	assert.True(t, mockReader.closed)
}

func TestGetIPsReaderError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("no such file")
	mockDecoder := &mockDecoder{}

	i := New(&mockReader{err: readErr}, mockDecoder)
	res, err := i.GetIPs(context.Background())
	assert.ErrorIs(t, err, readErr)
	assert.Nil(t, res)
	assert.Equal(t, 0, mockDecoder.count)
}

func TestGetIPsDecoderError(t *testing.T) {
	t.Parallel()

	decodeErr := errors.New("bad json")
	mockReader := &mockReader{ret: "{"}

	i := New(mockReader, &mockDecoder{err: decodeErr})
	res, err := i.GetIPs(context.Background())
	assert.ErrorIs(t, err, decodeErr)
	assert.Nil(t, res)
	assert.True(t, mockReader.closed)
}

func TestGetIPsValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		validate bool
		wantErr  bool
	}{
		"opaque":   {validate: false, wantErr: false},
		"validate": {validate: true, wantErr: true},
	}

	for name, test := range tests {
		i := New(&mockReader{}, &mockDecoder{ret: []string{"1.2.3.4/32", "not-a-cidr"}}, WithValidation(test.validate))
		res, err := i.GetIPs(context.Background())
		assert.Equal(t, test.wantErr, err != nil, name)
		if !test.wantErr {
			assert.Equal(t, []string{"1.2.3.4/32", "not-a-cidr"}, res, name)
		}
	}
}

func TestGetIPsTimeout(t *testing.T) {
	t.Parallel()

	r := &deadlineReader{}
	_, err := New(r, &mockDecoder{}).GetIPs(context.Background())
	assert.NoError(t, err)
	assert.False(t, r.hasDeadline)

	r = &deadlineReader{}
	_, err = New(r, &mockDecoder{}, WithTimeout(time.Minute)).GetIPs(context.Background())
	assert.NoError(t, err)
	assert.True(t, r.hasDeadline)
}

func TestValidateCIDRs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{
			name:    "valid",
			input:   []string{"1.2.3.4/32", "2001:db8:a0b:12f0::1/32"},
			wantErr: false,
		},
		{
			name:    "empty",
			input:   []string{},
			wantErr: false,
		},
		{
			name:    "missing suffix",
			input:   []string{"1.2.3.4"},
			wantErr: true,
		},
		{
			name:    "invalid",
			input:   []string{"abc"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		err := ValidateCIDRs(test.input)
		assert.Equal(t, test.wantErr, err != nil, test.name)
	}
}
