package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// ReportService emails the parents a weekly digest of spelling progress
// via Amazon SES
type ReportService struct {
	client     *sesv2.Client
	vocab      *VocabService
	fromEmail  string
	fromName   string
	recipients []string
	enabled    bool
}

// NewReportService creates the report service. With no from address
// configured the service is created disabled and skips all sends.
func NewReportService(awsRegion, fromEmail, fromName string, recipients []string, vocab *VocabService) (*ReportService, error) {
	if fromEmail == "" || len(recipients) == 0 {
		log.Println("Report emails disabled: REPORT_FROM_EMAIL or REPORT_RECIPIENTS not configured")
		return &ReportService{vocab: vocab, enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report emails enabled: from=%s, region=%s, recipients=%d",
		fromEmail, awsRegion, len(recipients))

	return &ReportService{
		client:     sesv2.NewFromConfig(cfg),
		vocab:      vocab,
		fromEmail:  fromEmail,
		fromName:   fromName,
		recipients: recipients,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether report sending is configured
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// weekStats summarizes one week of spelling practice
type weekStats struct {
	attempts   int
	errors     int
	mastered   int
	struggling []string
}

// SendWeeklyReport builds and sends the digest covering the last seven days
func (s *ReportService) SendWeeklyReport(ctx context.Context) error {
	if !s.enabled {
		log.Println("Skipping weekly report (service disabled)")
		return nil
	}

	stats := s.collectWeekStats(time.Now())
	subject := fmt.Sprintf("Spelling progress report - week of %s",
		time.Now().Format("2 Jan 2006"))
	htmlBody, textBody := renderReport(stats)

	for _, recipient := range s.recipients {
		if err := s.sendEmail(ctx, recipient, subject, htmlBody, textBody); err != nil {
			return err
		}
	}
	return nil
}

// collectWeekStats walks the spelling tracker for attempts in the seven
// days before now
func (s *ReportService) collectWeekStats(now time.Time) weekStats {
	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")

	var stats weekStats
	for _, h := range s.vocab.SpellingHistory() {
		weekErrors := 0
		for _, a := range h.Attempts {
			if a.Date < cutoff {
				continue
			}
			stats.attempts++
			if !a.Correct {
				stats.errors++
				weekErrors++
			}
		}
		if h.Mastered && h.LastAttemptDate >= cutoff {
			stats.mastered++
		}
		if weekErrors > 0 && !h.Mastered {
			stats.struggling = append(stats.struggling, h.Word)
		}
	}
	sort.Strings(stats.struggling)
	return stats
}

func renderReport(stats weekStats) (htmlBody, textBody string) {
	struggling := "none, great week!"
	if len(stats.struggling) > 0 {
		struggling = strings.Join(stats.struggling, ", ")
	}

	htmlBody = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>This week's spelling practice</h2>
	<ul>
		<li>Attempts: <strong>%d</strong></li>
		<li>Errors: <strong>%d</strong></li>
		<li>Words mastered this week: <strong>%d</strong></li>
	</ul>
	<p>Words still needing work: %s</p>
	<p style="font-size: 12px; color: #666;">Automated report from the family notebook. Please do not reply.</p>
</body>
</html>
`, stats.attempts, stats.errors, stats.mastered, struggling)

	textBody = fmt.Sprintf(`This week's spelling practice

Attempts: %d
Errors: %d
Words mastered this week: %d

Words still needing work: %s

---
Automated report from the family notebook. Please do not reply.
`, stats.attempts, stats.errors, stats.mastered, struggling)

	return htmlBody, textBody
}

// sendEmail sends one message through SES
func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", toEmail, err)
	}

	log.Printf("Report email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
