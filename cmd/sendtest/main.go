package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/surveymail/surveymail/internal/config"
	"github.com/surveymail/surveymail/internal/email"
	"github.com/surveymail/surveymail/internal/form"
	"github.com/surveymail/surveymail/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "sendtest",
	Short: "Smoke-test tool for the surveymail delivery pipeline",
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send a rendered sample submission through the configured Brevo account",
	RunE:  runEmail,
}

var submitCmd = &cobra.Command{
	Use:   "submit [url]",
	Short: "POST a sample submission to a running surveymail instance",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubmit,
}

func init() {
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(submitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// sampleForm builds the submission used by both commands.
func sampleForm() *form.Form {
	f := form.New()
	f.Set("customer_name", "測試使用者")
	f.Set("q1", "5")
	f.Set("q2", "4")
	f.Set("q2_extra", "回覆得很仔細")
	f.Set("q6", "sendtest 測試送出，請忽略")
	f.Set("submittedAt", time.Now().UTC().Format(time.RFC3339))
	f.Set("userAgent", "surveymail-sendtest")
	return f
}

func runEmail(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Brevo.Validate(); err != nil {
		return err
	}

	f := sampleForm()
	sender := email.NewBrevoSender(cfg.Brevo.APIKey)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	msg := email.Message{
		FromEmail: cfg.Brevo.FromEmail,
		FromName:  cfg.Brevo.SenderName(),
		To:        cfg.Brevo.ToEmail,
		Subject:   render.Subject(f),
		HTMLBody:  render.HTML(f, time.Now().UTC()),
	}
	if err := sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}

	fmt.Printf("test email sent to %s\n", cfg.Brevo.ToEmail)
	return nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	url := "http://localhost:8080/api/submit"
	if len(args) > 0 {
		url = args[0]
	}

	payload, err := json.Marshal(sampleForm())
	if err != nil {
		return fmt.Errorf("encode sample submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s: %s\n", resp.Status, bytes.TrimSpace(body))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
