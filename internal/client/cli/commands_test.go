package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/client/client"
	"github.com/dmitrijs2005/otpshare/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

type fakeClient struct {
	upload   client.UploadParams
	uploadTo *client.UploadResult

	id, otp  string
	info     *client.FileInfo
	download *client.DownloadedFile
	files    []client.FileInfo
	entries  []client.AccessLogEntry
	revoked  string
	deleted  string
	hadDL    bool
	err      error
	closed   bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }
func (f *fakeClient) Upload(ctx context.Context, p client.UploadParams) (*client.UploadResult, error) {
	f.upload = p
	if f.err != nil {
		return nil, f.err
	}
	return f.uploadTo, nil
}
func (f *fakeClient) Info(ctx context.Context, id string) (*client.FileInfo, error) {
	f.id = id
	return f.info, f.err
}
func (f *fakeClient) Download(ctx context.Context, id, otp string) (*client.DownloadedFile, error) {
	f.id, f.otp = id, otp
	_, f.hadDL = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return f.download, nil
}
func (f *fakeClient) List(ctx context.Context) ([]client.FileInfo, error) { return f.files, f.err }
func (f *fakeClient) Revoke(ctx context.Context, id string) error {
	f.revoked = id
	return f.err
}
func (f *fakeClient) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return f.err
}
func (f *fakeClient) AccessLog(ctx context.Context, id string) ([]client.AccessLogEntry, error) {
	f.id = id
	return f.entries, f.err
}

func newTestApp(t *testing.T, fc *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AccessToken = "tok"
	cfg.DownloadDir = t.TempDir()
	return &App{config: cfg, client: fc, reader: rdr(input), out: &out}, &out
}

func stubOTP(t *testing.T, otp string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(otp), nil }
	t.Cleanup(func() { readPassword = orig })
}

// ------------ tests ------------

func TestUpload_SendsFileAndPrintsLink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello test"), 0o600))

	exp := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)
	fc := &fakeClient{uploadTo: &client.UploadResult{FileID: "f1", ShareLink: "http://s/access/f1", OTPExpiresAt: exp, OTP: "123456"}}
	// recipient, description (two lines then blank), validity, attempts, one-time
	a, out := newTestApp(t, fc, "bob@example.com\nfor bob\nsecond line\n\n15\n\ny\n")

	require.NoError(t, a.Upload(context.Background(), []string{path}))

	assert.Equal(t, client.UploadParams{
		FileName:        "hello.txt",
		MimeType:        "text/plain; charset=utf-8",
		RecipientEmail:  "bob@example.com",
		Description:     "for bob\nsecond line",
		ValidityMinutes: 15,
		OneTimeAccess:   true,
		Content:         []byte("hello test"),
	}, fc.upload)
	assert.Contains(t, out.String(), "File shared: f1")
	assert.Contains(t, out.String(), "http://s/access/f1")
	assert.Contains(t, out.String(), "OTP: 123456")
}

func TestUpload_WithoutExposedOTP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))

	fc := &fakeClient{uploadTo: &client.UploadResult{FileID: "f1"}}
	a, out := newTestApp(t, fc, "bob@example.com\n\n\n\n\n")

	require.NoError(t, a.Upload(context.Background(), []string{path}))
	assert.Equal(t, 0, fc.upload.ValidityMinutes)
	assert.Equal(t, 0, fc.upload.MaxAttempts)
	assert.False(t, fc.upload.OneTimeAccess)
	assert.Contains(t, out.String(), "The OTP was sent to bob@example.com")
}

func TestUpload_LocalChecks(t *testing.T) {
	dir := t.TempDir()
	a, _ := newTestApp(t, &fakeClient{}, "")

	assert.Error(t, a.Upload(context.Background(), []string{filepath.Join(dir, "missing")}))
	assert.ErrorContains(t, a.Upload(context.Background(), []string{dir}), "is a directory")

	big := filepath.Join(dir, "big")
	require.NoError(t, os.WriteFile(big, make([]byte, 10), 0o600))
	a.config.MaxFileBytes = 5
	assert.ErrorContains(t, a.Upload(context.Background(), []string{big}), "larger than")
}

func TestDownload_WritesUniqueFile(t *testing.T) {
	stubOTP(t, "123456")

	fc := &fakeClient{download: &client.DownloadedFile{FileName: "../../hello.txt", Content: []byte("hello test")}}
	a, out := newTestApp(t, fc, "")
	require.NoError(t, os.WriteFile(filepath.Join(a.config.DownloadDir, "hello.txt"), []byte("old"), 0o600))

	require.NoError(t, a.Download(context.Background(), []string{"f1"}))

	assert.Equal(t, "f1", fc.id)
	assert.Equal(t, "123456", fc.otp)
	assert.True(t, fc.hadDL)

	got, err := os.ReadFile(filepath.Join(a.config.DownloadDir, "hello (1).txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello test", string(got))
	old, err := os.ReadFile(filepath.Join(a.config.DownloadDir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
	assert.Contains(t, out.String(), "Saved 10 bytes")
}

func TestDownload_Refused(t *testing.T) {
	stubOTP(t, "000000")

	fc := &fakeClient{err: client.ErrVerificationFailed}
	a, _ := newTestApp(t, fc, "f1\n")

	err := a.Download(context.Background(), nil)
	require.ErrorContains(t, err, "download refused")
	assert.Equal(t, "f1", fc.id)

	entries, err := os.ReadDir(a.config.DownloadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInfo_Prints(t *testing.T) {
	fc := &fakeClient{info: &client.FileInfo{
		FileID: "f1", FileName: "hello.txt", FileSize: 10, MimeType: "text/plain",
		AccessCount: 1, MaxAccessAttempts: 3, OneTimeAccess: true, Status: "active", Description: "for bob",
	}}
	a, out := newTestApp(t, fc, "f1\n")

	require.NoError(t, a.Info(context.Background(), nil))
	s := out.String()
	assert.Equal(t, "f1", fc.id)
	for _, want := range []string{"Name: hello.txt", "Size: 10 bytes", "Downloads: 1 of 3", "One-time download", "Status: active", "Description: for bob"} {
		assert.Contains(t, s, want)
	}
}

func TestArgOrPrompt_EmptyAnswer(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "\n")
	assert.ErrorContains(t, a.Info(context.Background(), nil), "value is required")
}

func TestOwnerCommands(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fc := &fakeClient{
		files: []client.FileInfo{{FileID: "f1", FileName: "hello.txt", FileSize: 10, AccessCount: 1, MaxAccessAttempts: 3, Status: "revoked"}},
		entries: []client.AccessLogEntry{
			{AccessType: "upload", AccessStatus: "success", CreatedAt: at},
			{AccessType: "otp_verify", AccessStatus: "failure", FailureReason: "invalid otp", ClientAddr: "10.0.0.1:5", CreatedAt: at},
		},
	}
	a, out := newTestApp(t, fc, "")
	ctx := context.Background()

	require.NoError(t, a.List(ctx, nil))
	assert.Contains(t, out.String(), "hello.txt")
	assert.Contains(t, out.String(), "1/3")

	require.NoError(t, a.Revoke(ctx, []string{"f1"}))
	assert.Equal(t, "f1", fc.revoked)
	require.NoError(t, a.Delete(ctx, []string{"f2"}))
	assert.Equal(t, "f2", fc.deleted)

	out.Reset()
	require.NoError(t, a.Log(ctx, []string{"f1"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "invalid otp")
	assert.Contains(t, lines[2], "10.0.0.1:5")
}

func TestList_Empty(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	require.NoError(t, a.List(context.Background(), nil))
	assert.Contains(t, out.String(), "No files shared yet")
}

func TestOwnerCommands_PropagateErrors(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{err: client.ErrNotFound}, "")
	ctx := context.Background()

	assert.ErrorIs(t, a.Revoke(ctx, []string{"x"}), client.ErrNotFound)
	assert.ErrorIs(t, a.Delete(ctx, []string{"x"}), client.ErrNotFound)
	assert.ErrorIs(t, a.Log(ctx, []string{"x"}), client.ErrNotFound)
	assert.ErrorIs(t, a.List(ctx, nil), client.ErrNotFound)
	assert.ErrorIs(t, a.Info(ctx, []string{"x"}), client.ErrNotFound)
}

func TestCanManage(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "")
	assert.True(t, a.canManage())
	a.config.AccessToken = ""
	assert.False(t, a.canManage())
}

func TestRun_ClosesClient(t *testing.T) {
	capturePrintln(t)
	fc := &fakeClient{}
	a, _ := newTestApp(t, fc, "exit\n")
	a.Run(context.Background())
	assert.True(t, fc.closed)
}

func TestRun_PromptsShareInput(t *testing.T) {
	capturePrintln(t)
	fc := &fakeClient{info: &client.FileInfo{FileID: "f1", FileName: "hello.txt"}}
	a, out := newTestApp(t, fc, "info\nf1\nexit\n")

	a.Run(context.Background())

	assert.Equal(t, "f1", fc.id)
	assert.Contains(t, out.String(), "Name: hello.txt")
}
