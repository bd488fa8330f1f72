package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type flakyClient struct {
	failures int
	calls    int
	saved    map[string][]byte
}

func (f *flakyClient) SaveBytes(ctx context.Context, bucketName string, objectName string, data []byte) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("temporary failure")
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[bucketName+"/"+objectName] = data
	return nil
}

func TestLocalSaveBytes(t *testing.T) {
	dir := t.TempDir()
	if err := NewLocal().SaveBytes(context.Background(), dir, "pages/page-1.png", []byte("png")); err != nil {
		t.Fatalf("SaveBytes() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "pages", "page-1.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "png" {
		t.Errorf("saved %q, want %q", data, "png")
	}
}

func TestLocalSaveBytesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewLocal().SaveBytes(ctx, t.TempDir(), "a.png", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("SaveBytes() error = %v, want context.Canceled", err)
	}
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		retries   uint64
		wantErr   bool
		wantCalls int
	}{
		{"succeeds first time", 0, 3, false, 1},
		{"recovers after failures", 2, 3, false, 3},
		{"gives up", 5, 2, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flaky := &flakyClient{failures: tt.failures}
			err := WithRetry(flaky, 0, tt.retries).SaveBytes(context.Background(), "bucket", "page.png", []byte("x"))
			if (err != nil) != tt.wantErr {
				t.Errorf("SaveBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if flaky.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", flaky.calls, tt.wantCalls)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	for name, want := range map[string]string{
		"a.png":  "image/png",
		"b.jpeg": "image/jpeg",
		"c.bin":  "application/octet-stream",
	} {
		if got := contentType(name); got != want {
			t.Errorf("contentType(%q) = %q, want %q", name, got, want)
		}
	}
}
