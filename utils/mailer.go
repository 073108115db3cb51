package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends reminder mail through AWS SES. It satisfies the reminder
// scheduler's sender interface.
type SESMailer struct {
	client *ses.Client
	source string
}

func NewSESMailer() (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		source: os.Getenv("SES_EMAIL"),
	}, nil
}

// generic SES sender
func (m *SESMailer) sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.source),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendReminder delivers the check-in reminder mail.
func (m *SESMailer) SendReminder(to string) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("mailer not configured")
	}
	subject := "FoodMood Reminder - Time to Treat Yourself!"
	body := "Hey there! Just a little reminder from FoodMood to check in on your next meal or mood update. " +
		"Take a moment for yourself - whether it's a delicious bite or a mindful check-in, you deserve it! " +
		"Stay happy & nourished!"
	return m.sendEmail(to, subject, body)
}
