// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package document

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	loc := awsv2.ToString(in.Bucket) + "/" + awsv2.ToString(in.Key)
	f.calls = append(f.calls, loc)
	body, ok := f.bodies[loc]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func factory(g ObjectGetter) GetterFactory {
	return func(context.Context) (ObjectGetter, error) { return g, nil }
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.json")
	require.NoError(t, os.WriteFile(path, []byte("{\n  \"version\": \"2021.12\"\n}\n"), 0o600))

	getter := &fakeGetter{bodies: map[string]string{
		"policies/core/v1.json": `{ "version": "2021.12", "segments": [] }`,
	}}

	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr string
	}{
		{name: "literal", spec: `{"version": "2021.12"}`, want: `{"version":"2021.12"}`},
		{name: "file", spec: "file://" + path, want: `{"version":"2021.12"}`},
		{name: "s3", spec: "s3://policies/core/v1.json", want: `{"version":"2021.12","segments":[]}`},
		{name: "empty", spec: "", wantErr: "empty document"},
		{name: "missing file", spec: "file://" + filepath.Join(dir, "nope.json"), wantErr: "failed to read document"},
		{name: "invalid json", spec: "not json", wantErr: "not valid JSON (literal)"},
		{name: "missing object", spec: "s3://policies/other.json", wantErr: "failed to get s3://policies/other.json"},
		{name: "bad s3 url", spec: "s3://bucket-only", wantErr: "expected s3://bucket/key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(context.Background(), tt.spec, factory(getter))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_NoFactory(t *testing.T) {
	_, err := Load(context.Background(), "s3://bucket/key.json", nil)
	assert.ErrorContains(t, err, "no S3 client available")
}

func TestLoad_LiteralNeverTouchesS3(t *testing.T) {
	getter := &fakeGetter{}
	_, err := Load(context.Background(), `{}`, factory(getter))
	require.NoError(t, err)
	assert.Empty(t, getter.calls)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://my-bucket/path/to/policy.json")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "path/to/policy.json", key)

	_, _, err = ParseS3URL("s3:///key")
	assert.Error(t, err)
}
