package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// ReportReadyEmailData holds data for the report-ready notification email
type ReportReadyEmailData struct {
	AdminName      string
	AdminEmail     string
	ReportTitle    string
	PeriodLabel    string
	FileName       string
	SizeLabel      string
	Attachment     []byte // report artifact, attached when small enough
	AttachmentType string
}

// attachmentLimit keeps attachments under Resend's payload cap
const attachmentLimit = 10 * 1024 * 1024

// SendReportReadyEmail notifies an admin that their report finished
// generating, attaching the artifact when it fits
func (r *ResendClient) SendReportReadyEmail(data ReportReadyEmailData) error {
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">レポートが完成しました</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px; color: #262622;">%s 様</p>
        <p style="margin: 12px 0 0 0; font-size: 14px; color: #262622;">リクエストされたレポートの生成が完了しました。</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 14px; color: #79776d;">レポート</p>
        <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s（%s）</p>
        <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">ファイル</p>
        <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s (%s)</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; color: #79776d;">管理画面のレポートページからもダウンロードできます。</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, data.ReportTitle, data.AdminName, data.ReportTitle, data.PeriodLabel, data.FileName, data.SizeLabel)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.AdminEmail,
		"subject": fmt.Sprintf("レポート完成のお知らせ: %s", data.ReportTitle),
		"html":    html,
	}

	if len(data.Attachment) > 0 && len(data.Attachment) <= attachmentLimit {
		payload["attachments"] = []map[string]interface{}{
			{
				"filename": data.FileName,
				"content":  base64.StdEncoding.EncodeToString(data.Attachment),
			},
		}
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] report ready email sent to %s for %s", data.AdminEmail, data.FileName)
	return nil
}
