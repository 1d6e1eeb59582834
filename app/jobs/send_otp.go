// Package jobs defines the background jobs processed by the queue workers.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/shallerhub/pkg/logger"
	"github.com/shashiranjanraj/shallerhub/pkg/notification"
	"github.com/shashiranjanraj/shallerhub/pkg/queue"
)

// SendOTPJob delivers an OTP code out of band. With no SMS gateway wired
// up it logs the delivery and posts to Slack when a webhook is configured.
type SendOTPJob struct {
	MobileNumber string `json:"mobileNumber"`
	Code         string `json:"code"`
}

// Handle implements queue.Job. The worker records the job metric.
func (j SendOTPJob) Handle() error {
	logger.Info("jobs: delivering otp", "mobile", j.MobileNumber)
	notification.SendAsync(j.MobileNumber, &otpNotification{job: j})
	return nil
}

type otpNotification struct {
	job SendOTPJob
}

func (n *otpNotification) Via() []string { return []string{"slack"} }

func (n *otpNotification) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: fmt.Sprintf("OTP for %s: %s", n.job.MobileNumber, n.job.Code),
	}
}

// Register makes every job type known to the queue before workers start.
func Register() {
	// The factory must return a pointer so the worker can unmarshal into it.
	queue.Register("jobs.SendOTPJob", func() queue.Job { return &SendOTPJob{} })
}

// QueueOTPNotifier enqueues OTP deliveries; it satisfies the user service's
// notifier interface.
type QueueOTPNotifier struct{}

func (QueueOTPNotifier) SendOTP(mobile, code string) error {
	return queue.Dispatch(SendOTPJob{MobileNumber: mobile, Code: code})
}
