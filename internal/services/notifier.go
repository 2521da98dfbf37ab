package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"resumatch/resume-analyzer/internal/models"
)

// Notifier sends analysis result emails off the request path. Delivery is
// best effort: a failed send is logged, never retried, and never affects the
// analysis response.
type Notifier interface {
	Start(ctx context.Context)
	Stop()
	EnqueueAnalysisEmail(to string, result *models.MatchResult)
}

type analysisEmail struct {
	to     string
	result *models.MatchResult
}

type notifier struct {
	mailer      Mailer
	queue       chan analysisEmail
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewNotifier(mailer Mailer, concurrency int) Notifier {
	return &notifier{
		mailer:      mailer,
		queue:       make(chan analysisEmail, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Notifier.
func (n *notifier) Start(ctx context.Context) {
	log.Printf("🚀 Starting notifier with %d concurrent senders\n", n.concurrency)

	for i := 0; i < n.concurrency; i++ {
		n.wg.Add(1)
		go n.processEmails(i + 1)
	}
}

// Stop implements Notifier.
func (n *notifier) Stop() {
	log.Println("🛑 Stopping notifier...")
	close(n.stopChan)
	n.wg.Wait()
	log.Println("✅ Notifier stopped")
}

// EnqueueAnalysisEmail implements Notifier.
func (n *notifier) EnqueueAnalysisEmail(to string, result *models.MatchResult) {
	select {
	case n.queue <- analysisEmail{to: to, result: result}:
		log.Printf("📥 Analysis email for %s enqueued\n", to)
	case <-n.stopChan:
		log.Printf("⚠️  Notifier stopped, dropping email for %s\n", to)
	default:
		log.Printf("⚠️  Notification queue full, dropping email for %s\n", to)
	}
}

func (n *notifier) processEmails(senderID int) {
	defer n.wg.Done()

	for {
		select {
		case <-n.stopChan:
			log.Printf("📧 Sender #%d stopped\n", senderID)
			return
		case email := <-n.queue:
			if err := n.mailer.Send(email.to, "Your Resume Analysis Results", buildAnalysisEmailBody(email.result)); err != nil {
				log.Printf("❌ Sender #%d failed to send email to %s: %v\n", senderID, email.to, err)
			} else {
				log.Printf("✅ Sender #%d delivered analysis email to %s\n", senderID, email.to)
			}
		}
	}
}

func buildAnalysisEmailBody(result *models.MatchResult) string {
	return fmt.Sprintf(`<h1>Resume Analysis Result</h1>
<p><strong>Match Score:</strong> %d%%</p>
<p><strong>Summary:</strong> %s</p>
<p><strong>Missing Keywords:</strong> %s</p>`,
		result.MatchScore,
		result.ProfileSummary,
		strings.Join(result.MissingKeywords, ", "),
	)
}
