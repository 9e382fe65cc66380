package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/client/client"
	"github.com/dmitrijs2005/otpshare/internal/filex"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// argOrPrompt returns args[0] or asks for the value.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", errors.New("value is required")
	}
	return v, nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	path, err := a.argOrPrompt(args, "Enter path of the file to share")
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if a.config.MaxFileBytes > 0 && info.Size() > a.config.MaxFileBytes {
		return fmt.Errorf("file is larger than %d bytes", a.config.MaxFileBytes)
	}

	recipient, err := GetSimpleText(a.reader, "Enter recipient email", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}
	validity, err := GetOptionalInt(a.reader, "OTP validity in minutes", a.out)
	if err != nil {
		return err
	}
	attempts, err := GetOptionalInt(a.reader, "Maximum downloads", a.out)
	if err != nil {
		return err
	}
	oneTime, err := GetYesNo(a.reader, "Revoke after the first download?", a.out)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.Upload(ctx, client.UploadParams{
		FileName:        filepath.Base(path),
		MimeType:        mime.TypeByExtension(filepath.Ext(path)),
		RecipientEmail:  recipient,
		Description:     description,
		ValidityMinutes: validity,
		MaxAttempts:     attempts,
		OneTimeAccess:   oneTime,
		Content:         content,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File shared: %s\n", resp.FileID)
	fmt.Fprintf(a.out, "Link: %s\n", resp.ShareLink)
	fmt.Fprintf(a.out, "OTP valid until: %s\n", resp.OTPExpiresAt.Local().Format(timeLayout))
	if resp.OTP != "" {
		fmt.Fprintf(a.out, "OTP: %s\n", resp.OTP)
	} else {
		fmt.Fprintf(a.out, "The OTP was sent to %s\n", recipient)
	}
	return nil
}

func (a *App) Info(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter file id")
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	f, err := a.client.Info(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Name: %s\n", f.FileName)
	fmt.Fprintf(a.out, "Size: %d bytes\n", f.FileSize)
	fmt.Fprintf(a.out, "Type: %s\n", f.MimeType)
	if f.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", f.Description)
	}
	fmt.Fprintf(a.out, "Uploaded: %s\n", f.UploadedAt.Local().Format(timeLayout))
	fmt.Fprintf(a.out, "OTP valid until: %s\n", f.OTPExpiresAt.Local().Format(timeLayout))
	fmt.Fprintf(a.out, "Downloads: %d of %d\n", f.AccessCount, f.MaxAccessAttempts)
	if f.OneTimeAccess {
		fmt.Fprintln(a.out, "One-time download")
	}
	fmt.Fprintf(a.out, "Status: %s\n", f.Status)
	return nil
}

// Download fetches a file with its OTP and writes it under the download
// directory without overwriting existing files.
func (a *App) Download(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter file id")
	if err != nil {
		return err
	}
	otp, err := GetOTP(a.out)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.Download(ctx, id, otp)
	if err != nil {
		if errors.Is(err, client.ErrVerificationFailed) {
			return errors.New("download refused: the file id or OTP is wrong, expired or used up")
		}
		return err
	}

	path, err := filex.UniquePath(dir, resp.FileName)
	if err != nil {
		return err
	}
	if err := filex.WriteNew(path, resp.Content); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(resp.Content), path)
	return nil
}

func (a *App) List(ctx context.Context, _ []string) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	files, err := a.client.List(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files shared yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tDOWNLOADS\tSTATUS\tEXPIRES")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d/%d\t%s\t%s\n",
			f.FileID, f.FileName, f.FileSize, f.AccessCount, f.MaxAccessAttempts, f.Status,
			f.OTPExpiresAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) Revoke(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter file id to revoke")
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Revoke(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Revoked %s\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter file id to delete")
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

func (a *App) Log(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter file id")
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	entries, err := a.client.AccessLog(ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tSTATUS\tCLIENT\tREASON")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format(time.DateTime), e.AccessType, e.AccessStatus, e.ClientAddr, e.FailureReason)
	}
	return tw.Flush()
}
