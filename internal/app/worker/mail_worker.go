package worker

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"time"

	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"
	"portfolio_api/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"gopkg.in/gomail.v2"
)

// MailWorker drains the contact-mail queue and sends a notification email
// for each stored message. Delivery is best-effort: a failed send is logged
// and the message stays readable through the admin inbox.
type MailWorker struct {
	rdb         *redis.Client
	contactRepo repository.ContactRepository
}

func NewMailWorker(rdb *redis.Client, contactRepo repository.ContactRepository) *MailWorker {
	return &MailWorker{rdb: rdb, contactRepo: contactRepo}
}

func (w *MailWorker) Start(ctx context.Context) {
	log.Println("Mail worker started, listening to queue:", config.AppConfig.MailQueueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("Mail worker stopping...")
			return
		default:
			result, err := w.rdb.BRPop(ctx, 0*time.Second, config.AppConfig.MailQueueName).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					time.Sleep(1 * time.Second)
					continue
				}
				log.Printf("ERROR: Failed to BRPop from queue '%s': %v", config.AppConfig.MailQueueName, err)
				time.Sleep(5 * time.Second)
				continue
			}

			// result is [queueName, value]
			if len(result) < 2 || result[1] == "" {
				continue
			}
			w.handleMessage(ctx, result[1])
		}
	}
}

func (w *MailWorker) handleMessage(ctx context.Context, messageID string) {
	msg, err := w.contactRepo.FindByID(ctx, messageID)
	if err != nil {
		log.Printf("ERROR: Failed to fetch contact message %s: %v", messageID, err)
		return
	}

	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.MailFrom == "" || cfg.MailTo == "" {
		log.Printf("WARN: Mail config missing, skipping notification for message %s", msg.ID)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.MailFrom)
	m.SetHeader("To", cfg.MailTo)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "Portfolio Contact: Message from "+msg.Name)
	m.SetBody("text/html", buildContactBody(msg))

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("ERROR: Failed to send notification for message %s: %v", msg.ID, err)
		return
	}
	log.Printf("INFO: Notification sent for contact message %s", msg.ID)
}

func buildContactBody(msg *model.ContactMessage) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #10b981; border-bottom: 2px solid #10b981; padding-bottom: 10px;">New Contact Form Submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Date:</strong> %s</p>
    <div style="padding: 15px; background-color: #f9fafb; border-left: 4px solid #10b981;">
      <p style="white-space: pre-wrap;">%s</p>
    </div>
    <p style="color: #6b7280; font-size: 14px;">This message was sent from your portfolio website contact form.</p>
  </div>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email), html.EscapeString(msg.Email),
		msg.CreatedAt.Format(time.RFC1123),
		html.EscapeString(msg.Message),
	)
}
